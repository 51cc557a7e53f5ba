package workflows

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/store/schema"
)

// LaunchListing sleeps until the launch date and launches the listing.
// A listing deleted or launched in the meantime ends the workflow without error.
func (w *workerCore) LaunchListing(ctx workflow.Context, input LaunchInput) error {
	logger.InfoWf(ctx, "Scheduling listing launch",
		zap.Uint64("listingID", input.ListingID),
		zap.Time("launchDate", input.LaunchDate))

	if wait := input.LaunchDate.Sub(workflow.Now(ctx)); wait > 0 {
		if err := workflow.Sleep(ctx, wait); err != nil {
			return err
		}
	}

	activityCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 5,
			InitialInterval: 5 * time.Second,
		},
	})

	var company schema.Company
	err := workflow.ExecuteActivity(activityCtx, w.executor.LaunchListing, input.ListingID).Get(ctx, &company)
	if err != nil {
		var appErr *temporal.ApplicationError
		if errors.As(err, &appErr) && appErr.Type() == errTypeListingNotFound {
			logger.InfoWf(ctx, "Listing no longer exists, skipping launch", zap.Uint64("listingID", input.ListingID))
			return nil
		}
		return err
	}

	logger.InfoWf(ctx, "Listing launch completed",
		zap.Uint64("listingID", input.ListingID),
		zap.Uint64("companyID", company.ID))

	return nil
}
