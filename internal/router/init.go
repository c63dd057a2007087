package router

import (
	"github.com/Aaronzito/api-web-encontrarte/internal/application"
	"github.com/Aaronzito/api-web-encontrarte/internal/container"
	pginfra "github.com/Aaronzito/api-web-encontrarte/internal/infrastructure/postgres"
	handlers "github.com/Aaronzito/api-web-encontrarte/internal/interface/http"
	"github.com/Aaronzito/api-web-encontrarte/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(pool)
	artworkRepo := pginfra.NewArtworkRepository(pool)
	auctionRepo := pginfra.NewAuctionRepository(pool)
	saleRepo := pginfra.NewSaleRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetRabbitPub(), logger)
	artworkSvc := application.NewArtworkService(artworkRepo, saleRepo, logger, container.GetES(), cfg.ESArtworksIndex)
	auctionSvc := application.NewAuctionService(auctionRepo)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, logger)))
	r.Add(modules.NewArtworkModule(handlers.NewArtworkHandler(artworkSvc, logger)))
	r.Add(modules.NewAuctionModule(handlers.NewAuctionHandler(auctionSvc, logger)))
}
