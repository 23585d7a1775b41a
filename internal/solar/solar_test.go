package solar

import (
	"math"
	"testing"
	"time"
)

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want int
	}{
		{"Jan 1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"Feb 29 leap year", time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), 60},
		{"Mar 1 leap year", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 61},
		{"Mar 1 non-leap year", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), 60},
		{"Dec 31 leap year", time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), 366},
		{"Dec 31 non-leap year", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOfYear(tt.time); got != tt.want {
				t.Errorf("DayOfYear() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeclination_Range(t *testing.T) {
	for d := 1; d <= 366; d++ {
		dec := Declination(d)
		if dec < -23.45 || dec > 23.45 {
			t.Errorf("Declination(%d) = %.3f°, outside [-23.45, 23.45]", d, dec)
		}
	}
}

func TestDeclination_Extremes(t *testing.T) {
	maxDay, minDay := 1, 1
	maxDec, minDec := Declination(1), Declination(1)
	for d := 2; d <= 366; d++ {
		dec := Declination(d)
		if dec > maxDec {
			maxDec, maxDay = dec, d
		}
		if dec < minDec {
			minDec, minDay = dec, d
		}
	}

	// Maximum near the June solstice, minimum near the December solstice.
	if maxDay < 168 || maxDay > 178 {
		t.Errorf("declination maximum on day %d (%.2f°), want near day 172", maxDay, maxDec)
	}
	if minDay < 350 || minDay > 360 {
		t.Errorf("declination minimum on day %d (%.2f°), want near day 355", minDay, minDec)
	}
	if maxDec < 23.3 {
		t.Errorf("declination maximum %.2f°, want close to 23.45°", maxDec)
	}
	if minDec > -23.3 {
		t.Errorf("declination minimum %.2f°, want close to -23.45°", minDec)
	}
}

func TestEquationOfTime_Range(t *testing.T) {
	for d := 1; d <= 366; d++ {
		eot := EquationOfTime(d)
		if eot < -17 || eot > 17 {
			t.Errorf("EquationOfTime(%d) = %.3f min, outside [-17, 17]", d, eot)
		}
	}
}

func TestEquationOfTime_KnownShape(t *testing.T) {
	// Mid-February dip: sundial well behind the clock.
	if eot := EquationOfTime(42); eot > -13 {
		t.Errorf("EquationOfTime(42) = %.2f min, want below -13", eot)
	}
	// Early November peak: sundial well ahead.
	if eot := EquationOfTime(307); eot < 14 {
		t.Errorf("EquationOfTime(307) = %.2f min, want above 14", eot)
	}
}

func TestNoonUTC(t *testing.T) {
	tests := []struct {
		name      string
		longitude float64
		date      time.Time
		wantHrMin int
		wantHrMax int
	}{
		{
			name:      "Greenwich near equinox - noon close to 12 UTC",
			longitude: 0,
			date:      time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			wantHrMin: 11,
			wantHrMax: 12,
		},
		{
			name:      "Vancouver summer solstice - noon around 20 UTC",
			longitude: -123.1207,
			date:      time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
			wantHrMin: 19,
			wantHrMax: 21,
		},
		{
			name:      "Sydney - noon around 2 UTC",
			longitude: 151.2093,
			date:      time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
			wantHrMin: 1,
			wantHrMax: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noon := NoonUTC(tt.longitude, tt.date)

			if noon.Hour() < tt.wantHrMin || noon.Hour() > tt.wantHrMax {
				t.Errorf("NoonUTC() hour = %d, want between %d and %d",
					noon.Hour(), tt.wantHrMin, tt.wantHrMax)
			}
			if noon.Second() != 0 || noon.Nanosecond() != 0 {
				t.Errorf("NoonUTC() = %v, want seconds zeroed", noon)
			}
			if noon.Location() != time.UTC {
				t.Errorf("NoonUTC() location = %v, want UTC", noon.Location())
			}
		})
	}
}

func TestNoonUTC_FloorRule(t *testing.T) {
	// 12 - lon/15 - eot/60 with lon chosen so the fractional hour is known:
	// lon = -7.5 gives 12.5h before the EoT term. Whatever the EoT shifts,
	// minutes must come from the fractional remainder, not rounding.
	date := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	hours := 12 - (-7.5)/15 - EquationOfTime(DayOfYear(date))/60

	noon := NoonUTC(-7.5, date)
	wantHour := int(math.Floor(hours))
	wantMin := int(math.Floor((hours - math.Floor(hours)) * 60))

	if noon.Hour() != wantHour || noon.Minute() != wantMin {
		t.Errorf("NoonUTC() = %02d:%02d, want %02d:%02d",
			noon.Hour(), noon.Minute(), wantHour, wantMin)
	}
}

func TestElevationAtNoon(t *testing.T) {
	tests := []struct {
		name     string
		latitude float64
		date     time.Time
		wantMin  float64
		wantMax  float64
	}{
		{
			name:     "Vancouver summer solstice - high sun",
			latitude: 49.2827,
			date:     time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
			wantMin:  63,
			wantMax:  65,
		},
		{
			name:     "Equator at equinox - near zenith",
			latitude: 0,
			date:     time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			wantMin:  89,
			wantMax:  90,
		},
		{
			name:     "75N winter solstice - below horizon",
			latitude: 75,
			date:     time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC),
			wantMin:  -10,
			wantMax:  -7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElevationAtNoon(tt.latitude, tt.date)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("ElevationAtNoon() = %.2f°, want between %.2f° and %.2f°",
					got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestBelowHorizonAtNoon(t *testing.T) {
	winter := time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC)
	summer := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)

	if !BelowHorizonAtNoon(75, winter) {
		t.Error("75N winter solstice: want polar night (sun below horizon at noon)")
	}
	if BelowHorizonAtNoon(75, summer) {
		t.Error("75N summer solstice: midnight sun, noon sun must be up")
	}
	if BelowHorizonAtNoon(49.2827, winter) {
		t.Error("Vancouver winter solstice: noon sun must be above horizon")
	}
}

func TestViewingDirection(t *testing.T) {
	tests := []struct {
		latitude float64
		want     Direction
	}{
		{49.2827, DirectionSouth},
		{0.0001, DirectionSouth},
		{0, DirectionNorth}, // equator looks north
		{-0.0001, DirectionNorth},
		{-45, DirectionNorth},
		{90, DirectionSouth},
		{-90, DirectionNorth},
	}

	for _, tt := range tests {
		if got := ViewingDirection(tt.latitude); got != tt.want {
			t.Errorf("ViewingDirection(%v) = %q, want %q", tt.latitude, got, tt.want)
		}
	}
}
