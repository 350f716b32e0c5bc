package daylight

import (
	"testing"
)

func TestDeriveClearSky(t *testing.T) {
	p := Derive(State{TimeOfDay: Morning})

	if p.SunIntensity != 3.5 {
		t.Errorf("Clear sun intensity should be 3.5, got %f", p.SunIntensity)
	}

	if p.AmbientIntensity != 0.3 {
		t.Errorf("Clear ambient intensity should be 0.3, got %f", p.AmbientIntensity)
	}
}

func TestDeriveCloudy(t *testing.T) {
	p := Derive(State{TimeOfDay: Morning, Cloudy: true})

	if !almostEqual(p.SunIntensity, 1.05) {
		t.Errorf("Cloudy sun intensity should be 1.05, got %f", p.SunIntensity)
	}

	if !almostEqual(p.AmbientIntensity, 0.15) {
		t.Errorf("Cloudy ambient intensity should be 0.15, got %f", p.AmbientIntensity)
	}
}

func almostEqual(a, b float32) bool {
	diff := a - b
	return diff < 1e-5 && diff > -1e-5
}

func TestDeriveIntensityGrid(t *testing.T) {
	for _, timeOfDay := range []TimeOfDay{Morning, Afternoon} {
		for _, cloudy := range []bool{false, true} {
			p := Derive(State{TimeOfDay: timeOfDay, Cloudy: cloudy})

			wantSun := float32(3.5)
			wantAmbient := float32(0.3)
			if cloudy {
				wantSun *= 0.3
				wantAmbient *= 0.5
			}

			if p.SunIntensity != wantSun {
				t.Errorf("%v cloudy=%v: sun=%f want %f", timeOfDay, cloudy, p.SunIntensity, wantSun)
			}
			if p.AmbientIntensity != wantAmbient {
				t.Errorf("%v cloudy=%v: ambient=%f want %f", timeOfDay, cloudy, p.AmbientIntensity, wantAmbient)
			}
		}
	}
}

func TestDeriveSunPosition(t *testing.T) {
	morning := Derive(State{TimeOfDay: Morning})
	afternoon := Derive(State{TimeOfDay: Afternoon})

	if morning.SunPosition.X() != 100 {
		t.Errorf("Morning sun x should be +100, got %f", morning.SunPosition.X())
	}

	if afternoon.SunPosition.X() != -100 {
		t.Errorf("Afternoon sun x should be -100, got %f", afternoon.SunPosition.X())
	}

	if morning.SunPosition.Y() != 60 || afternoon.SunPosition.Y() != 60 {
		t.Error("Sun height should always be 60")
	}
}

func TestDeriveShadowBiasConstant(t *testing.T) {
	clear := Derive(State{TimeOfDay: Morning})
	overcast := Derive(State{TimeOfDay: Afternoon, Cloudy: true})

	if clear.ShadowBias != overcast.ShadowBias {
		t.Error("Shadow bias should not vary with state")
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	if s.TimeOfDay != Morning || s.Cloudy || s.Active {
		t.Errorf("Default state should be morning/clear/inactive, got %+v", s)
	}
}

func TestTimeOfDayString(t *testing.T) {
	if Morning.String() != "morning" {
		t.Errorf("Morning.String() = %s", Morning.String())
	}
	if Afternoon.String() != "afternoon" {
		t.Errorf("Afternoon.String() = %s", Afternoon.String())
	}
}
