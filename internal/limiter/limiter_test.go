package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{name: "valid limit only", cfg: Config{Limit: 10}},
		{name: "valid offset only", cfg: Config{Offset: 5}},
		{name: "valid limit and offset", cfg: Config{Limit: 10, Offset: 5}},
		{name: "valid tail only", cfg: Config{Tail: 10}},
		{name: "tail ignores offset (valid)", cfg: Config{Tail: 10, Offset: 5}},
		{name: "limit and tail mutually exclusive", cfg: Config{Limit: 10, Tail: 5}, wantErr: true, errMsg: "mutually exclusive"},
		{name: "negative limit invalid", cfg: Config{Limit: -1}, wantErr: true, errMsg: "non-negative"},
		{name: "negative offset invalid", cfg: Config{Offset: -1}, wantErr: true, errMsg: "non-negative"},
		{name: "negative tail invalid", cfg: Config{Tail: -1}, wantErr: true, errMsg: "non-negative"},
		{name: "zero values valid", cfg: Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateConflictIsSentinel(t *testing.T) {
	assert.ErrorIs(t, Config{Limit: 1, Tail: 1}.Validate(), ErrConflict)
}

func TestConfigIsActive(t *testing.T) {
	assert.False(t, Config{}.IsActive())
	assert.True(t, Config{Limit: 1}.IsActive())
	assert.True(t, Config{Offset: 1}.IsActive())
	assert.True(t, Config{Tail: 1}.IsActive())
}

func TestApply(t *testing.T) {
	items := []string{"text", "clipboard", "selection", "date", "time", "now"}
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{name: "inactive", cfg: Config{}, want: items},
		{name: "limit", cfg: Config{Limit: 2}, want: []string{"text", "clipboard"}},
		{name: "offset", cfg: Config{Offset: 4}, want: []string{"time", "now"}},
		{name: "limit and offset", cfg: Config{Limit: 2, Offset: 3}, want: []string{"date", "time"}},
		{name: "limit past end", cfg: Config{Limit: 10, Offset: 5}, want: []string{"now"}},
		{name: "offset past end", cfg: Config{Offset: 10}, want: []string{}},
		{name: "tail", cfg: Config{Tail: 2}, want: []string{"time", "now"}},
		{name: "tail ignores offset", cfg: Config{Tail: 1, Offset: 3}, want: []string{"now"}},
		{name: "tail longer than list", cfg: Config{Tail: 20}, want: items},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.cfg, items))
		})
	}
}

func TestApplyEmptyAndNil(t *testing.T) {
	assert.Empty(t, Apply(Config{Limit: 3}, []int{}))
	assert.Empty(t, Apply(Config{Tail: 3}, []int(nil)))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                     string
		length, selected, height int
		want                     Config
	}{
		{name: "fits", length: 3, selected: 2, height: 5, want: Config{}},
		{name: "no height", length: 30, selected: 2, height: 0, want: Config{}},
		{name: "top", length: 30, selected: 0, height: 5, want: Config{Limit: 5}},
		{name: "last visible row", length: 30, selected: 4, height: 5, want: Config{Limit: 5}},
		{name: "scrolled", length: 30, selected: 7, height: 5, want: Config{Limit: 5, Offset: 3}},
		{name: "selection clamped", length: 30, selected: 99, height: 5, want: Config{Limit: 5, Offset: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Window(tt.length, tt.selected, tt.height)
			assert.Equal(t, tt.want, w)
			start, end := w.Bounds(tt.length)
			sel := min(tt.selected, tt.length-1)
			assert.True(t, sel >= start && sel < end, "selected row %d outside [%d,%d)", sel, start, end)
		})
	}
}
