package dto

type StartInput struct {
	Question string
	Answer   string
	Seconds  int
}

type StartOutput struct {
	Seconds int
	Saved   bool
}

type SubmitInput struct {
	Answer string
}

type ResultOutput struct {
	UserAnswer    string
	CorrectAnswer string
	Match         bool
}

type SettingsOutput struct {
	Question string
	Answer   string
	Seconds  int
}

type SnapshotOutput struct {
	Mode     string
	Question string
	Seconds  int
}
