package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntoContext(t *testing.T) {
	tests := []struct {
		name     string
		settings *Run
	}{
		{
			name:     "empty_settings",
			settings: &Run{},
		},
		{
			name: "settings_with_values",
			settings: &Run{
				CatalogPath: "catalog.toml",
				NoColor:     true,
				IsQuiet:     true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			newCtx := IntoContext(ctx, tt.settings)
			require.NotNil(t, newCtx)
			assert.NotEqual(t, ctx, newCtx)

			retrieved, ok := newCtx.Value(settingsContextKey).(*Run)
			require.True(t, ok)
			assert.Same(t, tt.settings, retrieved)
		})
	}
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantOk bool
		want   *Run
	}{
		{
			name:   "context_with_settings",
			ctx:    IntoContext(context.Background(), &Run{NoColor: true, CatalogPath: "c.yaml"}),
			wantOk: true,
			want:   &Run{NoColor: true, CatalogPath: "c.yaml"},
		},
		{
			name:   "context_without_settings",
			ctx:    context.Background(),
			wantOk: false,
		},
		{
			name:   "context_with_wrong_type",
			ctx:    context.WithValue(context.Background(), settingsContextKey, "wrong type"),
			wantOk: false,
		},
		{
			name:   "empty_settings_struct",
			ctx:    IntoContext(context.Background(), &Run{}),
			wantOk: true,
			want:   &Run{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromContext(tt.ctx)
			assert.Equal(t, tt.wantOk, ok)
			if !tt.wantOk {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntoContextFromContextRoundtrip(t *testing.T) {
	s := NewCliParams()
	s.CatalogPath = "/etc/tplc/catalog.json"
	got, ok := FromContext(IntoContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
