package handlers

// HandlerBundle groups the handlers wired in main for route registration.
type HandlerBundle struct {
	Booking *BookingHandler
	Review  *ReviewHandler
	Contact *ContactHandler
}
