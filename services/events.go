package services

// Change events pushed to the register UI after a mutating operation has
// persisted.
const (
	EventMenuChanged  = "menu"
	EventCartChanged  = "cart"
	EventSalesChanged = "sales"
)

// EventPublisher fans a change event out to connected UI clients. The
// websocket hub implements it; tests substitute a recorder.
type EventPublisher interface {
	Publish(event string, payload any)
}
