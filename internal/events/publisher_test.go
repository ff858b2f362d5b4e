package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"stylique/internal/config"
	"stylique/internal/model"

	"github.com/hamba/avro/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

// MockProducerClient is a mock implementation of ProducerClient.
type MockProducerClient struct {
	mock.Mock
}

func (m *MockProducerClient) ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	args := m.Called(ctx, rs)
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		results = append(results, kgo.ProduceResult{Record: r, Err: args.Error(0)})
	}
	return results
}

func (m *MockProducerClient) Close() {
	m.Called()
}

func testOrder() model.Order {
	return model.Order{
		ID:             "8a4c2f5e-4a4f-4b9e-9f57-0d2b1f2a7c11",
		Email:          "jane@example.com",
		IdempotencyKey: "key-1",
		TotalPrice:     65,
		CartItems: []model.CartItem{
			{ProductID: "P001", Name: "Blue Shirt", Count: 2, Price: 30},
			{ProductID: "P004", Name: "Scarf", Count: 1, Price: 5},
		},
		CreatedAt: time.Date(2025, 10, 1, 12, 30, 0, 123456789, time.UTC),
	}
}

func TestEncodeOrderPlaced(t *testing.T) {
	order := testOrder()

	data, err := EncodeOrderPlaced(order)
	require.NoError(t, err)

	decoded, err := decodeOrderPlaced(data)
	require.NoError(t, err)

	assert.Equal(t, order.ID, decoded.OrderID)
	assert.Equal(t, order.IdempotencyKey, decoded.IdempotencyKey)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, int64(2), decoded.Items[0].Count)
	assert.Equal(t, "Scarf", decoded.Items[1].Name)
	assert.True(t, decoded.PlacedAt.Equal(order.CreatedAt.Truncate(time.Millisecond)))
}

func TestKafkaPublisher_PublishOrderPlaced(t *testing.T) {
	tests := []struct {
		name        string
		produceErr  error
		expectError bool
	}{
		{
			name: "Success",
		},
		{
			name:        "Broker error",
			produceErr:  errors.New("not enough replicas"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := new(MockProducerClient)
			var produced []*kgo.Record
			cl.On("ProduceSync", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					produced = args.Get(1).([]*kgo.Record)
				}).
				Return(tt.produceErr)

			p := newKafkaPublisher(cl, "stylique.orders", zerolog.Nop())
			err := p.PublishOrderPlaced(context.Background(), testOrder())

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "not enough replicas")
				return
			}

			require.NoError(t, err)
			require.Len(t, produced, 1)

			record := produced[0]
			assert.Equal(t, "stylique.orders", record.Topic)
			assert.Equal(t, []byte("jane@example.com"), record.Key)
			assert.Equal(t, []kgo.RecordHeader{
				{Key: HeaderEventType, Value: []byte(EventOrderPlaced)},
				{Key: HeaderSchemaVersion, Value: []byte("1")},
			}, record.Headers)

			decoded, err := decodeOrderPlaced(record.Value)
			require.NoError(t, err)
			assert.Equal(t, "key-1", decoded.IdempotencyKey)
			cl.AssertExpectations(t)
		})
	}
}

func TestKafkaPublisher_CanceledContext(t *testing.T) {
	cl := new(MockProducerClient)
	p := newKafkaPublisher(cl, "stylique.orders", zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.PublishOrderPlaced(ctx, testOrder())

	assert.ErrorIs(t, err, context.Canceled)
	cl.AssertNotCalled(t, "ProduceSync", mock.Anything, mock.Anything)
}

func TestKafkaPublisher_Close(t *testing.T) {
	cl := new(MockProducerClient)
	cl.On("Close").Return()

	newKafkaPublisher(cl, "stylique.orders", zerolog.Nop()).Close()

	cl.AssertExpectations(t)
}

func TestNewPublisher_DisabledWithoutBrokers(t *testing.T) {
	p, err := NewPublisher(context.Background(), config.KafkaConfig{OrderTopic: "orders"}, zerolog.Nop())

	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.PublishOrderPlaced(context.Background(), testOrder()))
}

func decodeOrderPlaced(data []byte) (OrderPlacedV1, error) {
	var v OrderPlacedV1
	err := avro.Unmarshal(orderPlacedSchema, data, &v)
	return v, err
}
