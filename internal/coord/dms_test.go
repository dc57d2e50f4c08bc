package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDMS(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`W109 16'36.88", S27 07'32.46"`, "W109 16 36.88 S27 07 32.46"},
		{"W109°16′36.88″, S27°07′32.46″", "W109 16 36.88 S27 07 32.46"},
		{"  109 : 16 : 36  ", "109 16 36"},
		{"North 27", "27"},
		{"-27.5/+109.25", "-27.5 +109.25"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeDMS(tc.in), tc.in)
	}
}

func TestDMSGenericParse(t *testing.T) {
	c := NewDMSGeneric()

	lon := -(109.0 + 16.0/60 + 36.88/3600)
	lat := -(27.0 + 7.0/60 + 32.46/3600)

	t.Run("front flag longitude first", func(t *testing.T) {
		got, err := c.Parse(`W109 16'36.88", S27 07'32.46"`)

		require.NoError(t, err)
		assert.InDelta(t, lon, got.Longitude, 1e-12)
		assert.InDelta(t, lat, got.Latitude, 1e-12)
	})

	t.Run("front flag latitude first", func(t *testing.T) {
		got, err := c.Parse(`N27 07'32.46", E109 16'36.88"`)

		require.NoError(t, err)
		assert.InDelta(t, -lon, got.Longitude, 1e-12)
		assert.InDelta(t, -lat, got.Latitude, 1e-12)
	})

	t.Run("trailing flag longitude first", func(t *testing.T) {
		got, err := c.Parse(`109 16'36.88" W, 27 07'32.46" S`)

		require.NoError(t, err)
		assert.InDelta(t, lon, got.Longitude, 1e-12)
		assert.InDelta(t, lat, got.Latitude, 1e-12)
	})

	t.Run("trailing flag latitude first", func(t *testing.T) {
		got, err := c.Parse(`27 07'32.46" S, 109 16'36.88" W`)

		require.NoError(t, err)
		assert.InDelta(t, lon, got.Longitude, 1e-12)
		assert.InDelta(t, lat, got.Latitude, 1e-12)
	})

	t.Run("signs as front flags", func(t *testing.T) {
		got, err := c.Parse("-109 16 36.88 +27 07 32.46")

		require.NoError(t, err)
		assert.InDelta(t, lon, got.Longitude, 1e-12)
		assert.InDelta(t, -lat, got.Latitude, 1e-12)
	})

	t.Run("space as seconds decimal point", func(t *testing.T) {
		got, err := c.Parse("W109 16 36 88 S27 07 32 46")

		require.NoError(t, err)
		assert.InDelta(t, lon, got.Longitude, 1e-12)
		assert.InDelta(t, lat, got.Latitude, 1e-12)
	})

	t.Run("unicode punctuation", func(t *testing.T) {
		got, err := c.Parse("W109°16′36.88″ S27°07′32.46″")

		require.NoError(t, err)
		assert.InDelta(t, lon, got.Longitude, 1e-12)
	})

	t.Run("rejects bare numbers", func(t *testing.T) {
		_, err := c.Parse("109 16 36.88 27 07 32.46")

		assert.ErrorIs(t, err, ErrRejected)
	})

	t.Run("rejects plain decimal pair", func(t *testing.T) {
		_, err := c.Parse("-27.1234567, 109.2345678")

		assert.ErrorIs(t, err, ErrRejected)
	})
}

func TestDMSGenericFormat(t *testing.T) {
	c := NewDMSGeneric()

	t.Run("front flags longitude first", func(t *testing.T) {
		out := c.Format(Coordinate{
			Longitude: -(109.0 + 16.0/60 + 36.9/3600),
			Latitude:  27.5,
		})

		assert.Equal(t, `W109 16'36.9", N27 30'0.0"`, out)
	})

	t.Run("minute boundary drift", func(t *testing.T) {
		// 10°17'00" computed via division may land one ulp under a whole
		// minute; the pre-rounding must keep minutes at 17 and seconds
		// clamped at zero.
		out := c.Format(Coordinate{
			Longitude: 10.0 + 17.0/60,
			Latitude:  -(10.0 + 17.0/60),
		})

		assert.Equal(t, `E10 17'0.0", S10 17'0.0"`, out)
	})

	t.Run("round trip", func(t *testing.T) {
		want := Coordinate{Longitude: -109.2769111, Latitude: -27.1256833}
		got, err := c.Parse(c.Format(want))

		require.NoError(t, err)
		// One decimal on seconds: worth up to 0.05" of a degree.
		assert.InDelta(t, want.Longitude, got.Longitude, 0.05/3600)
		assert.InDelta(t, want.Latitude, got.Latitude, 0.05/3600)
	})
}

func TestDMSLFV(t *testing.T) {
	c := NewDMSLFV()

	lon := -(109.0 + 16.0/60 + 36.88/3600)
	lat := -(27.0 + 7.0/60 + 32.46/3600)

	t.Run("format latitude first", func(t *testing.T) {
		out := c.Format(Coordinate{Longitude: lon, Latitude: lat})

		assert.Equal(t, "S27 07 32 460 W109 16 36 880", out)
	})

	t.Run("parse own output", func(t *testing.T) {
		got, err := c.Parse("S27 07 32 460 W109 16 36 880")

		require.NoError(t, err)
		assert.InDelta(t, lon, got.Longitude, 1e-9)
		assert.InDelta(t, lat, got.Latitude, 1e-9)
	})

	t.Run("rejects dotted seconds", func(t *testing.T) {
		_, err := c.Parse("S27 07 32.460 W109 16 36.880")

		assert.ErrorIs(t, err, ErrRejected)
	})
}

func TestDMSNaviDisplay(t *testing.T) {
	c := NewDMSNaviDisplay()

	t.Run("format glyphs latitude first", func(t *testing.T) {
		out := c.Format(Coordinate{
			Longitude: -(109.0 + 16.0/60 + 36.9/3600),
			Latitude:  -(27.0 + 7.0/60 + 32.5/3600),
		})

		assert.Equal(t, "S27°07′32.5″\tW109°16′36.9″", out)
	})

	t.Run("parse own output", func(t *testing.T) {
		got, err := c.Parse("S27°07′32.5″\tW109°16′36.9″")

		require.NoError(t, err)
		assert.InDelta(t, -(109.0+16.0/60+36.9/3600), got.Longitude, 1e-9)
		assert.InDelta(t, -(27.0+7.0/60+32.5/3600), got.Latitude, 1e-9)
	})

	t.Run("rejects plain punctuation", func(t *testing.T) {
		_, err := c.Parse(`S27 07'32.5", W109 16'36.9"`)

		assert.ErrorIs(t, err, ErrRejected)
	})
}
