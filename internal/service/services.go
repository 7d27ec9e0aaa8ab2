package service

// Services aggregates every service-layer component the transport layer
// depends on. The aggregate keeps handler wiring to a single parameter as
// further services are added alongside the auth service.
type Services struct {
	AuthService AuthService
}

// NewServices bundles the given services into a Services aggregate.
func NewServices(auth AuthService) *Services {
	return &Services{AuthService: auth}
}
