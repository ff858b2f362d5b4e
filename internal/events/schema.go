package events

import (
	"time"

	"stylique/internal/model"

	"github.com/hamba/avro/v2"
)

// OrderPlacedSchemaTextV1 is the Avro schema of the OrderPlaced event.
const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "stylique.orders",
	"name": "OrderPlaced",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "email", "type": "string"},
		{"name": "idempotency_key", "type": "string"},
		{"name": "total_price", "type": "double"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "OrderItem",
				"fields": [
					{"name": "product_id", "type": "string"},
					{"name": "name", "type": "string"},
					{"name": "count", "type": "long"},
					{"name": "price", "type": "double"}
				]
			}
		}},
		{"name": "placed_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

var orderPlacedSchema = avro.MustParse(OrderPlacedSchemaTextV1)

type (
	OrderPlacedV1 struct {
		OrderID        string        `avro:"order_id"`
		Email          string        `avro:"email"`
		IdempotencyKey string        `avro:"idempotency_key"`
		TotalPrice     float64       `avro:"total_price"`
		Items          []OrderItemV1 `avro:"items"`
		PlacedAt       time.Time     `avro:"placed_at"`
	}

	OrderItemV1 struct {
		ProductID string  `avro:"product_id"`
		Name      string  `avro:"name"`
		Count     int64   `avro:"count"`
		Price     float64 `avro:"price"`
	}
)

func orderToSchemaV1(o model.Order) (s OrderPlacedV1) {
	s.OrderID = o.ID
	s.Email = o.Email
	s.IdempotencyKey = o.IdempotencyKey
	s.TotalPrice = o.TotalPrice
	s.PlacedAt = o.CreatedAt.UTC().Truncate(time.Millisecond)

	s.Items = make([]OrderItemV1, len(o.CartItems))
	for i, item := range o.CartItems {
		s.Items[i].ProductID = item.ProductID
		s.Items[i].Name = item.Name
		s.Items[i].Count = int64(item.Count)
		s.Items[i].Price = item.Price
	}
	return
}

// EncodeOrderPlaced encodes the order as an OrderPlaced Avro record.
func EncodeOrderPlaced(o model.Order) ([]byte, error) {
	return avro.Marshal(orderPlacedSchema, orderToSchemaV1(o))
}

