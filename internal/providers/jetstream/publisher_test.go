package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/mocks"
	jspublisher "github.com/feral-file/ai-company/internal/providers/jetstream"
)

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	nc     *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupPublisherMocks(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		nc:     mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

func testConfig() jspublisher.Config {
	return jspublisher.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "AI_COMPANY_EVENTS",
		SubjectPrefix:  "company",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "test",
	}
}

func TestPublisher_PublishEvent(t *testing.T) {
	m := setupPublisherMocks(t)
	ctx := context.Background()

	m.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(m.nc, m.js, nil)
	m.js.EXPECT().
		CreateOrUpdateStream(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error) {
			assert.Equal(t, "AI_COMPANY_EVENTS", cfg.Name)
			assert.Equal(t, []string{"company.>"}, cfg.Subjects)
			return nil, nil
		})

	pub, err := jspublisher.NewPublisher(ctx, testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := &domain.Event{
		Type:      domain.EventTypeListingCreated,
		Subject:   "42",
		Data:      map[string]any{"token_symbol": "ABC"},
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	m.js.EXPECT().
		Publish(ctx, "company.listing.created", gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var got domain.Event
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, domain.EventTypeListingCreated, got.Type)
			assert.Equal(t, "42", got.Subject)
			return &jetstream.PubAck{Stream: "AI_COMPANY_EVENTS", Sequence: 1}, nil
		})

	require.NoError(t, pub.PublishEvent(ctx, event))

	m.nc.EXPECT().Drain().Return(nil)
	pub.Close()
}

func TestPublisher_PublishError(t *testing.T) {
	m := setupPublisherMocks(t)
	ctx := context.Background()

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.nc, m.js, nil)
	m.js.EXPECT().CreateOrUpdateStream(ctx, gomock.Any()).Return(nil, nil)

	pub, err := jspublisher.NewPublisher(ctx, testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	m.js.EXPECT().Publish(ctx, "company.tokens.purchased", gomock.Any()).Return(nil, errors.New("no responders"))

	err = pub.PublishEvent(ctx, &domain.Event{Type: domain.EventTypeTokensPurchased, Subject: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no responders")

	// Drain failure falls back to Close
	m.nc.EXPECT().Drain().Return(errors.New("already closed"))
	m.nc.EXPECT().Close()
	pub.Close()
}

func TestNewPublisher_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("connect fails", func(t *testing.T) {
		m := setupPublisherMocks(t)
		m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("connection refused"))

		_, err := jspublisher.NewPublisher(ctx, testConfig(), m.natsJS, adapter.NewJSON())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("stream creation fails", func(t *testing.T) {
		m := setupPublisherMocks(t)
		m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.nc, m.js, nil)
		m.js.EXPECT().CreateOrUpdateStream(ctx, gomock.Any()).Return(nil, errors.New("insufficient resources"))
		m.nc.EXPECT().Close()

		_, err := jspublisher.NewPublisher(ctx, testConfig(), m.natsJS, adapter.NewJSON())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AI_COMPANY_EVENTS")
	})
}
