package game

import "github.com/sirupsen/logrus"

// Director plays a game on its own, one intent per step.
type Director interface {
	// Init prepares the director for a new board.
	Init(View)

	// Act picks the next intent, or returns false when it has nothing to do.
	Act(View) (Intent, bool)
}

// Direct lets director play on engine until the game ends, the director gives
// up, or maxSteps intents have been applied. Zero maxSteps means no limit.
func Direct(engine *Engine, director Director, maxSteps int) (Outcome, int, error) {
	director.Init(engine.View())

	steps := 0
	for maxSteps == 0 || steps < maxSteps {
		view := engine.View()
		if view.Finished() {
			return view.Outcome, steps, nil
		}

		intent, ok := director.Act(view)
		if !ok {
			break
		}

		result, err := engine.Apply(intent)
		if err != nil {
			return Outcome{}, steps, err
		}
		steps++

		Log.WithFields(logrus.Fields{
			"step":    steps,
			"intent":  intent,
			"changed": len(result.Changed),
		}).Debug("director acted")
	}

	return engine.View().Outcome, steps, nil
}
