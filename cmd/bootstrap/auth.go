package bootstrap

import (
	"fmt"

	"campus-booking/internal/infra/authclient"
	"campus-booking/internal/infra/uow"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewAuthenticator,
	),
)

func NewAuthenticator(cfg config.Config, u *uow.PostgresUoW) (shared.Authenticator, error) {
	switch cfg.Auth.Provider {
	case "pyxis":
		return authclient.NewPyxisClient(cfg.Auth.PyxisLoginURL, cfg.Auth.PyxisTimeout), nil
	case "local":
		return authclient.NewLocalAuthenticator(u.Members()), nil
	default:
		return nil, fmt.Errorf("invalid AUTH_PROVIDER %q: must be pyxis or local", cfg.Auth.Provider)
	}
}
