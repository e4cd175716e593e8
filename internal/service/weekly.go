package service

// WeeklyPrompt is one step of the Sunday reflection wizard.
type WeeklyPrompt struct {
	Key      string
	Label    string
	Question string
}

const WeeklyTitle = "Sunday Weekly Reflection"

// WeeklyPrompts are asked in order at the end of the Starter Week.
var WeeklyPrompts = []WeeklyPrompt{
	{Key: "ordinance", Label: "Ordinance", Question: "How did you feel while participating in or watching the Sacrament today?"},
	{Key: "habit", Label: "Habits", Question: "Looking at your Habit Tracker, what interfered with your consistency this week?"},
	{Key: "mission", Label: "Missions", Question: "Which daily priesthood mission was the most impactful for you this week and why?"},
	{Key: "people", Label: "People", Question: "Who did you notice this week that might need a priesthood blessing or a friend?"},
	{Key: "commitment", Label: "Commitment", Question: "What is your specific priesthood goal for the upcoming month?"},
}
