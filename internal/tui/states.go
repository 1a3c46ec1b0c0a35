package tui

type ApplicationState int

const (
	StateMainMenu ApplicationState = iota
	StateModeSelect
	StateSingleBackground
	StateWindowBackground
	StateWindowGeometry
	StateMultiMenu
	StateAddDisplay
	StateAddBackground
	StateAddScaling
	StateAddClamp
	StateRemoveScreen
	StateDefaultBackground
	StatePerformance
	StateFPSPrompt
	StateSound
	StateSoundMode
	StateVolumePrompt
	StateInteraction
	StateScreenshotGate
	StateScreenshot
	StateScreenshotPath
	StateDelayPrompt
	StateAdvanced
	StateAssetsDir
	StateAddProperty
	StateReview
	StateExecuting
	StateDone
)
