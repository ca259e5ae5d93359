package lookup

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/logviews/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(scope string) Cache {
	return Cache{
		ID:          "62a9e6bdf3d7456348e7c3e1",
		Name:        "threat-intel-cache",
		Title:       "Threat Intel Cache",
		Description: "Caches threat intel lookups",
		Config: CacheConfig{
			"type":                     "guava_cache",
			"max_size":                 1000,
			"expire_after_access":      60,
			"expire_after_access_unit": "SECONDS",
			"expire_after_write":       0,
			"expire_after_write_unit":  "MILLISECONDS",
		},
		Metadata: &core.EntityMetadata{
			Scope:     scope,
			Revision:  2,
			CreatedAt: "2022-06-13T08:47:12Z",
			UpdatedAt: "2022-06-29T12:00:28Z",
		},
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.True(t, r.Sealed())
	assert.Equal(t, []string{"guava_cache", "none"}, r.Names())

	ct, ok := r.Get("guava_cache")
	require.True(t, ok)
	assert.Equal(t, "Node-local, in-memory cache", ct.DisplayName)

	err := r.Register(CacheType{Type: "redis"})
	require.ErrorIs(t, err, ErrRegistrySealed)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(CacheType{Type: "b", DisplayName: "B"}))
	require.NoError(t, r.Register(CacheType{Type: "a", DisplayName: "A"}))

	err := r.Register(CacheType{Type: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	require.Error(t, r.Register(CacheType{}))

	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestRegistry_Describe(t *testing.T) {
	tests := []struct {
		name          string
		scope         string
		wantEditable  bool
		wantDeletable bool
	}{
		{name: "default scope is editable", scope: "DEFAULT", wantEditable: true, wantDeletable: true},
		{name: "illuminate scope is read-only", scope: "ILLUMINATE", wantEditable: false, wantDeletable: false},
		{name: "scope lookup ignores case", scope: "illuminate", wantEditable: false, wantDeletable: false},
		{name: "unknown scope is read-only", scope: "PARTNER", wantEditable: false, wantDeletable: false},
		{name: "missing scope defaults", scope: "", wantEditable: true, wantDeletable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := DefaultRegistry().Describe(testCache(tt.scope), DefaultScopes())
			require.NoError(t, err)

			assert.Equal(t, "Node-local, in-memory cache", view.TypeDisplayName)
			assert.Equal(t, tt.wantEditable, view.Editable)
			assert.Equal(t, tt.wantDeletable, view.Deletable)
			assert.Equal(t, []SummaryLine{
				{Label: "Maximum entries", Value: "1,000"},
				{Label: "Expire after access", Value: "60 seconds"},
				{Label: "Expire after write", Value: "Never"},
			}, view.Summary)
		})
	}
}

func TestRegistry_DescribeWithoutMetadata(t *testing.T) {
	c := testCache("")
	c.Metadata = nil

	view, err := DefaultRegistry().Describe(c, DefaultScopes())
	require.NoError(t, err)
	assert.Equal(t, ScopeDefault, view.Scope)
	assert.True(t, view.Editable)
}

func TestRegistry_DescribeNullCache(t *testing.T) {
	c := Cache{Name: "no-cache", Config: CacheConfig{"type": "none"}}

	view, err := DefaultRegistry().Describe(c, DefaultScopes())
	require.NoError(t, err)
	assert.Equal(t, "Do not cache values", view.TypeDisplayName)
	assert.Empty(t, view.Summary)
	assert.NotNil(t, view.Summary)
}

func TestRegistry_DescribeUnknownType(t *testing.T) {
	c := Cache{Name: "redis-cache", Config: CacheConfig{"type": "redis"}}

	_, err := DefaultRegistry().Describe(c, DefaultScopes())
	require.Error(t, err)

	var unknown *UnknownCacheTypeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "redis", unknown.Type)
	assert.Equal(t, []string{"guava_cache", "none"}, unknown.Available)
	assert.Contains(t, err.Error(), "Hint:")
}

func TestRegistry_DescribeInvalidConfig(t *testing.T) {
	c := testCache("DEFAULT")
	c.Config["expire_after_access_unit"] = "FORTNIGHTS"

	_, err := DefaultRegistry().Describe(c, DefaultScopes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown time unit")
}

func TestScopes_Merge(t *testing.T) {
	scopes := DefaultScopes().Merge(Scopes{"partner": {Mutable: true}})

	assert.True(t, scopes.IsMutable("PARTNER"))
	assert.False(t, scopes.IsDeletable("PARTNER"))
	assert.True(t, scopes.IsMutable("DEFAULT"))
	assert.False(t, scopes.IsMutable("ILLUMINATE"))
}

func TestScopes_RuleIgnoresKeyCase(t *testing.T) {
	scopes := Scopes{"partner": {Mutable: true, Deletable: true}, "Default": {Mutable: true}}

	assert.True(t, scopes.IsMutable("PARTNER"))
	assert.True(t, scopes.IsDeletable("partner"))
	assert.True(t, scopes.IsMutable(""), "empty scope resolves to DEFAULT")
	assert.False(t, scopes.IsDeletable(""))
	assert.Equal(t, ScopeRule{}, scopes.Rule("other"))
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		amount  int64
		unit    string
		want    string
		wantErr bool
	}{
		{amount: 0, unit: "SECONDS", want: "Never"},
		{amount: 0, unit: "", want: "Never"},
		{amount: 1, unit: "MINUTES", want: "1 minute"},
		{amount: 90, unit: "seconds", want: "90 seconds"},
		{amount: 1500, unit: "MILLISECONDS", want: "1,500 milliseconds"},
		{amount: 5, unit: "WEEKS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.want+tt.unit, func(t *testing.T) {
			got, err := FormatExpiry(tt.amount, tt.unit)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeGuavaCacheConfig_WeakTypes(t *testing.T) {
	cfg, err := DecodeGuavaCacheConfig(CacheConfig{
		"type":     "guava_cache",
		"max_size": "250",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(250), cfg.MaxSize)

	_, err = DecodeGuavaCacheConfig(CacheConfig{"max_size": -1})
	require.Error(t, err)
}
