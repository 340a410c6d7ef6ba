// Package mock holds gomock doubles for the ports the handlers and stores depend on.
package mock

//go:generate mockgen -destination=commands/commands.go -package=commandsmock hotel-reservation/internal/usecase/commands BookingCommands,CouponCommands
//go:generate mockgen -destination=queries/queries.go -package=queriesmock hotel-reservation/internal/usecase/queries BookingQueries,CouponQueries
//go:generate mockgen -destination=usecase/usecase.go -package=usecasemock hotel-reservation/internal/usecase TokenValidator
//go:generate mockgen -destination=repository/repository.go -package=repositorymock hotel-reservation/internal/infra/repository BookingWriteQueries,CouponWriteQueries
//go:generate mockgen -destination=readstore/readstore.go -package=readstoremock hotel-reservation/internal/infra/readstore BookingViewQueries,CouponViewQueries
