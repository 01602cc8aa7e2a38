package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"range-booking/cmd/bootstrap/components"
	"range-booking/internal/domain/resource"
	"range-booking/internal/pkg/clock"
	"range-booking/internal/pkg/config"
	"range-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(RegisterSeed),
)

func RegisterSeed(lc fx.Lifecycle, cfg config.Config, seeder components.Seeder, clk clock.Clock, logger *slog.Logger) error {
	resources, err := ParseResourceSeeds(cfg.Seed.Resources, clk)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, r := range resources {
				if err := seeder.Upsert(ctx, r); err != nil {
					return err
				}
			}
			for _, name := range cfg.Seed.WhitelistedOfficers {
				if err := seeder.WhitelistOfficer(ctx, strings.TrimSpace(name)); err != nil {
					return err
				}
			}
			if len(resources) > 0 || len(cfg.Seed.WhitelistedOfficers) > 0 {
				logger.Info("reference data seeded",
					"resources", len(resources),
					"whitelisted_officers", len(cfg.Seed.WhitelistedOfficers))
			}
			return nil
		},
	})
	return nil
}

// ParseResourceSeeds reads "id:type:name" entries. The name may itself
// contain colons.
func ParseResourceSeeds(entries []string, clk clock.Clock) ([]*resource.Resource, error) {
	out := make([]*resource.Resource, 0, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 {
			return nil, errs.Newf("invalid resource seed %q, want id:type:name", entry)
		}
		r, err := resource.NewResource(parts[0], parts[2], resource.Type(strings.ToLower(parts[1])), clk.Now())
		if err != nil {
			return nil, errs.Wrapf(err, "invalid resource seed %q", entry)
		}
		out = append(out, r)
	}
	return out, nil
}
