package utils

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr string
	}{
		{"missing uses default", "", 5, ""},
		{"in range", "12", 12, ""},
		{"lower bound", "1", 1, ""},
		{"upper bound", "50", 50, ""},
		{"below range", "0", 0, "must be between 1 and 50"},
		{"above range", "51", 0, "must be between 1 and 50"},
		{"not a number", "abc", 0, "must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			if tt.raw != "" {
				q.Set("top_n", tt.raw)
			}

			got, err := QueryInt(q, "top_n", 5, 1, 50)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				var pe *ParamError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, "top_n", pe.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt64Min(t *testing.T) {
	q := url.Values{"min_population": {"25000000"}}
	v, err := QueryInt64Min(q, "min_population", 10_000_000, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(25_000_000), v)

	v, err = QueryInt64Min(url.Values{}, "min_population", 10_000_000, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), v)

	_, err = QueryInt64Min(url.Values{"min_population": {"-1"}}, "min_population", 0, 0)
	assert.Error(t, err)
}

func TestQueryFloatAndRequireFloat(t *testing.T) {
	q := url.Values{"lat": {"35.5"}, "bad": {"north"}}

	v, err := RequireFloat(q, "lat")
	require.NoError(t, err)
	assert.Equal(t, 35.5, v)

	_, err = RequireFloat(q, "lon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is required")

	_, err = QueryFloat(q, "bad", 1)
	require.Error(t, err)

	d, err := QueryFloat(q, "lat_delta", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestQueryFloat_RejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity", "1e400"} {
		t.Run(raw, func(t *testing.T) {
			_, err := QueryFloat(url.Values{"lat": {raw}}, "lat", 0)
			require.Error(t, err)

			var pe *ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "lat", pe.Name)

			_, err = RequireFloat(url.Values{"lat": {raw}}, "lat")
			assert.Error(t, err)
		})
	}
}

func TestQueryFloatMin(t *testing.T) {
	v, err := QueryFloatMin(url.Values{"lat_delta": {"0"}}, "lat_delta", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = QueryFloatMin(url.Values{}, "lat_delta", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = QueryFloatMin(url.Values{"lat_delta": {"-0.5"}}, "lat_delta", 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be at least 0")

	_, err = QueryFloatMin(url.Values{"lon_delta": {"Inf"}}, "lon_delta", 1, 0)
	assert.Error(t, err)
}

func TestRequireDate(t *testing.T) {
	q := url.Values{"start_date": {"2025-01-01"}, "end_date": {"2025-13-01"}}

	d, err := RequireDate(q, "start_date")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", d)

	_, err = RequireDate(q, "end_date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	_, err = RequireDate(url.Values{}, "start_date")
	assert.Error(t, err)
}

func TestParsePathInt(t *testing.T) {
	v, err := ParsePathInt("region_id", "7")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = ParsePathInt("region_id", "seven")
	assert.Error(t, err)
}
