package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/store"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

// ErrFlagsUnavailable means the platform registry could not be read and no
// previously resolved flag set was available to fall back on.
var ErrFlagsUnavailable = errors.New("feature flags unavailable")

// FlagLayer is one source of flag values. Load returns the values the layer
// defines for orgID; keys it has no opinion on are simply absent.
type FlagLayer interface {
	Name() string
	Load(ctx context.Context, orgID string) (map[string]bool, error)
}

// OverrideLayer reads per-organization overrides.
type OverrideLayer struct{ Store store.Store }

func (OverrideLayer) Name() string { return "organization_override" }

func (l OverrideLayer) Load(ctx context.Context, orgID string) (map[string]bool, error) {
	overrides, err := l.Store.Features().ListOrganizationOverrides(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(overrides))
	for _, o := range overrides {
		out[o.FeatureName] = o.Enabled
	}
	return out, nil
}

// PlanLayer reads the defaults for the organization's plan tier. An unknown
// organization or one without a plan contributes nothing.
type PlanLayer struct{ Store store.Store }

func (PlanLayer) Name() string { return "plan_default" }

func (l PlanLayer) Load(ctx context.Context, orgID string) (map[string]bool, error) {
	org, err := l.Store.Organizations().GetOrganizationByID(ctx, orgID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if org.Plan == "" {
		return nil, nil
	}

	defaults, err := l.Store.Features().ListPlanFeatures(ctx, org.Plan)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(defaults))
	for _, f := range defaults {
		out[f.FeatureName] = f.Enabled
	}
	return out, nil
}

// PlatformLayer is the global registry. Its key set defines which flags
// exist.
type PlatformLayer struct{ Store store.Store }

func (PlatformLayer) Name() string { return "platform_default" }

func (l PlatformLayer) Load(ctx context.Context, _ string) (map[string]bool, error) {
	features, err := l.Store.Features().ListPlatformFeatures(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(features))
	for _, f := range features {
		out[f.Name] = f.Enabled
	}
	return out, nil
}

// FlagResolver resolves flags through an ordered chain of layers. The first
// layer that defines a key decides it; values are never merged.
type FlagResolver struct {
	// Scoped layers apply only when an organization is given, highest
	// precedence first.
	Scoped []FlagLayer
	// Platform is consulted last and defines the registered key set.
	Platform FlagLayer
	// Timeout bounds each layer load. Defaults to DefaultStoreTimeout.
	Timeout time.Duration
}

// NewFlagResolver wires the standard override, plan, platform chain.
func NewFlagResolver(st store.Store, timeout time.Duration) *FlagResolver {
	return &FlagResolver{
		Scoped:   []FlagLayer{OverrideLayer{Store: st}, PlanLayer{Store: st}},
		Platform: PlatformLayer{Store: st},
		Timeout:  timeout,
	}
}

func (r *FlagResolver) load(ctx context.Context, layer FlagLayer, orgID string) (map[string]bool, error) {
	ctx, cancel := bounded(ctx, r.Timeout, DefaultStoreTimeout)
	defer cancel()

	values, err := layer.Load(ctx, orgID)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return values, err
}

// Resolve returns the effective value of key for orgID. The registry is read
// first: a key it does not define resolves to false whatever the scoped
// layers say, as does any failure to read it. Scoped layers are then loaded
// lazily and a failing one is skipped.
func (r *FlagResolver) Resolve(ctx context.Context, key, orgID string) bool {
	log := slogx.FromContext(ctx)

	registry, err := r.load(ctx, r.Platform, "")
	if err != nil {
		log.Warn("flag registry unavailable, resolving to false",
			slog.String("flag", key),
			slog.Any("error", err),
		)
		return false
	}
	platformDefault, registered := registry[key]
	if !registered {
		return false
	}

	if orgID != "" {
		for _, layer := range r.Scoped {
			values, err := r.load(ctx, layer, orgID)
			if err != nil {
				log.Warn("flag layer unavailable, falling through",
					slog.String("layer", layer.Name()),
					slog.String("organization_id", orgID),
					slog.Any("error", err),
				)
				continue
			}
			if v, ok := values[key]; ok {
				return v
			}
		}
	}
	return platformDefault
}

// ResolveAll resolves every registered flag for orgID. The result always
// has exactly the registry's key set: a failing scoped layer is treated as
// empty so its keys fall through to the next layer. Only a registry
// failure is returned, as ErrFlagsUnavailable.
func (r *FlagResolver) ResolveAll(ctx context.Context, orgID string) (map[string]bool, error) {
	log := slogx.FromContext(ctx)

	registry, err := r.load(ctx, r.Platform, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagsUnavailable, err)
	}

	var scoped []map[string]bool
	if orgID != "" {
		scoped = make([]map[string]bool, 0, len(r.Scoped))
		for _, layer := range r.Scoped {
			values, err := r.load(ctx, layer, orgID)
			if err != nil {
				log.Warn("flag layer unavailable, degrading to next layer",
					slog.String("layer", layer.Name()),
					slog.String("organization_id", orgID),
					slog.Any("error", err),
				)
				continue
			}
			scoped = append(scoped, values)
		}
	}

	out := make(map[string]bool, len(registry))
	for key, platformDefault := range registry {
		out[key] = platformDefault
		for _, values := range scoped {
			if v, ok := values[key]; ok {
				out[key] = v
				break
			}
		}
	}
	return out, nil
}

type cachedFlags struct {
	flags     map[string]bool
	fetchedAt time.Time
}

// FeatureService serves flag lookups with a short-lived per-organization
// cache of bulk results.
type FeatureService struct {
	Resolver *FlagResolver
	CacheTTL time.Duration
	Now      func() time.Time

	cache sync.Map // organization id -> cachedFlags
}

func NewFeatureService(resolver *FlagResolver, ttl time.Duration) *FeatureService {
	if ttl <= 0 {
		ttl = DefaultFeatureCacheTTL
	}
	return &FeatureService{Resolver: resolver, CacheTTL: ttl, Now: time.Now}
}

func (s *FeatureService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// EnabledFeatures returns the resolved flag set for orgID, which may be
// empty for platform defaults. A fresh cached result is returned as is. When
// the registry is unreachable a stale cached result is served instead of
// failing.
func (s *FeatureService) EnabledFeatures(ctx context.Context, orgID string) (map[string]bool, error) {
	log := slogx.FromContext(ctx)

	cached, hit := s.cache.Load(orgID)
	if hit {
		entry := cached.(cachedFlags)
		if s.now().Sub(entry.fetchedAt) < s.CacheTTL {
			return maps.Clone(entry.flags), nil
		}
	}

	flags, err := s.Resolver.ResolveAll(ctx, orgID)
	if err != nil {
		if hit {
			log.Warn("serving stale feature flags",
				slog.String("organization_id", orgID),
				slog.Any("error", err),
			)
			return maps.Clone(cached.(cachedFlags).flags), nil
		}
		return nil, err
	}

	s.cache.Store(orgID, cachedFlags{flags: flags, fetchedAt: s.now()})
	return maps.Clone(flags), nil
}

// IsEnabled resolves a single flag. A fresh cached bulk result for the
// organization answers directly; otherwise the layer chain is walked.
func (s *FeatureService) IsEnabled(ctx context.Context, key, orgID string) bool {
	if cached, ok := s.cache.Load(orgID); ok {
		entry := cached.(cachedFlags)
		if s.now().Sub(entry.fetchedAt) < s.CacheTTL {
			if v, ok := entry.flags[key]; ok {
				return v
			}
		}
	}
	return s.Resolver.Resolve(ctx, key, orgID)
}

// Invalidate drops the cached flags for orgID.
func (s *FeatureService) Invalidate(orgID string) {
	s.cache.Delete(orgID)
}
