package main

import (
	"context"
	"log/slog"
	"os"

	"chatter/config"
	"chatter/internal/delivery"
	"chatter/internal/delivery/http"
	"chatter/internal/delivery/http/middleware"
	"chatter/internal/delivery/http/router/handler"
	"chatter/internal/domain/service"
	"chatter/internal/infra/auth/firebase"
	"chatter/internal/infra/auth/insecure"
	logs "chatter/internal/infra/log"
	"chatter/internal/infra/persistence/mongodb"
	"chatter/internal/infra/pubsub"
	"chatter/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewProfileRepository,
			mongodb.NewRoomRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newIdentityVerifier,
			pubsub.NewEventPublisher,
		),
	)
}

// newIdentityVerifier selects the token verifier from configuration. The
// insecure verifier parses claims without signature checks and exists for
// local development only.
func newIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Auth.Provider {
	case "firebase":
		return firebase.NewVerifier(ctx, cfg.Auth.Firebase, logger)
	case "insecure":
		return insecure.NewVerifier(logger), nil
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewRoomService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewRoomHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
