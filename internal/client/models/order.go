package models

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

type OrderDetail struct {
	OrchidID     int     `json:"orchidId"`
	Name         string  `json:"name"`
	URL          string  `json:"url"`
	CategoryName string  `json:"categoryName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// Order as returned by the server. OrderDate is kept as the server's local
// date-time string; it is display-only on the client.
type Order struct {
	ID           int           `json:"id"`
	TotalAmount  float64       `json:"totalAmount"`
	OrderDate    string        `json:"orderDate"`
	OrderStatus  OrderStatus   `json:"orderStatus"`
	AccountID    int           `json:"accountId"`
	OrderDetails []OrderDetail `json:"orderDetails"`
}

type OrderItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type OrderRequest struct {
	OrderDetails []OrderItemRequest `json:"orderDetails"`
}
