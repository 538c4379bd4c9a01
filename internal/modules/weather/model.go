// README: Weather condition summary consumed by the fee engine.
package weather

// Summary is a read-only snapshot of conditions at the destination.
type Summary struct {
	Main        string
	Description string
	TempC       float64
	IsBad       bool
}

// badConditions is the provider's vocabulary for conditions that trigger the
// express surcharge. Exact-match, case-sensitive.
var badConditions = map[string]bool{
	"Rain":         true,
	"Thunderstorm": true,
	"Storm":        true,
}

// Unavailable is the safe default returned when the provider cannot be
// reached. A quote must never fail solely because weather data is missing.
func Unavailable() Summary {
	return Summary{Description: "unavailable", IsBad: false}
}
