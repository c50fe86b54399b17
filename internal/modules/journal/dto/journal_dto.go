package dto

type GenerateJournalInput struct {
	TeamInteractions string `json:"team_interactions"`
	SkillDevelopment string `json:"skill_development"`
}

type JournalResponse struct {
	JournalEntry string `json:"journal_entry"`
}
