package service

// Advisory strings shown to the user. The tier advisories are mutually
// exclusive; the rest stack on top in a fixed order.
const (
	adviceHighStress     = "🫁 High stress detected — Try 5-min deep breathing (4-4-4) and a short walk."
	adviceModerateStress = "🧘 Moderate stress — Try a 5–10 min guided meditation or calming music."
	adviceMildStress     = "😌 Mild stress — Consider some light stretching or journaling."
	adviceLowStress      = "✨ Low stress — Great! Consider a 2-min gratitude note to maintain this state."
	adviceSleepDeficit   = "😴 Sleep is below optimal — Wind down 30 minutes earlier and avoid screens before bed."
	adviceOverwork       = "⏰ Long work day detected — Take micro-breaks, try Pomodoro technique (25/5)."
	adviceKeepItUp       = "🌟 Good sleep + low stress — Perfect combo! Keep up the healthy routine."
)

// GenerateSuggestions maps a submitted entry's values to an ordered list of
// advisories. Pure and deterministic; exactly one tier advisory fires, the
// sleep/work/reinforcement rules are evaluated independently. Out-of-range
// moods are not rejected, the rules just evaluate whatever value arrives.
func GenerateSuggestions(mood int, sleepHours, workHours float64) []string {
	suggestions := []string{}

	if mood >= 8 || (sleepHours < 5 && mood >= 6) {
		suggestions = append(suggestions, adviceHighStress)
	} else if mood >= 6 {
		suggestions = append(suggestions, adviceModerateStress)
	} else if mood >= 4 {
		suggestions = append(suggestions, adviceMildStress)
	} else {
		suggestions = append(suggestions, adviceLowStress)
	}

	if sleepHours < 6 {
		suggestions = append(suggestions, adviceSleepDeficit)
	}

	if workHours > 10 {
		suggestions = append(suggestions, adviceOverwork)
	}

	if sleepHours >= 8 && mood <= 3 {
		suggestions = append(suggestions, adviceKeepItUp)
	}

	return suggestions
}

// StressLabel buckets a mood value into a coarse label for display and for
// the insights context.
func StressLabel(mood int) string {
	switch {
	case mood <= 2:
		return "Very Low"
	case mood <= 4:
		return "Low"
	case mood <= 6:
		return "Moderate"
	case mood <= 8:
		return "High"
	default:
		return "Very High"
	}
}
