package service

import (
	"context"
	"fmt"
	"strings"

	"zeros.dev/launchpad/internal/agent/providers"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/journal/dto"
	taskRepo "zeros.dev/launchpad/internal/modules/task/repository"
)

const recentTaskLimit = 3

const defaultTeamInteractions = "Discussed project architecture with the senior dev team, pair-programmed on the new UI module."
const defaultSkillDevelopment = "Focused on improving backend service design and advanced Go patterns."

type JournalService interface {
	// Generate produces a personalized daily journal entry for the user from
	// their recent tasks plus interaction and skill summaries.
	Generate(ctx context.Context, user *entity.User, input dto.GenerateJournalInput) (*dto.JournalResponse, error)
}

type journalService struct {
	tasks taskRepo.TaskRepository
	llm   providers.LLMProvider
}

func NewJournalService(tasks taskRepo.TaskRepository, llm providers.LLMProvider) JournalService {
	return &journalService{tasks: tasks, llm: llm}
}

func (s *journalService) Generate(ctx context.Context, user *entity.User, input dto.GenerateJournalInput) (*dto.JournalResponse, error) {
	if s.llm == nil {
		return nil, fmt.Errorf("journal generation is not configured")
	}

	recentTasks := s.recentTasksSummary(ctx, user.ID)

	teamInteractions := input.TeamInteractions
	if teamInteractions == "" {
		teamInteractions = defaultTeamInteractions
	}

	skillDevelopment := input.SkillDevelopment
	if skillDevelopment == "" {
		skillDevelopment = defaultSkillDevelopment
	}

	prompt := fmt.Sprintf(`You are a helpful assistant that generates personalized daily journal entries for program apprentices.

Integrate the following data points to create a structured and thoughtful journal entry:

Recent Tasks: %s
Team Interactions: %s
Skill Development: %s

The journal entry should:
- Follow common diary styles (paragraphs).
- Highlight key insights and discoveries.
- Mention areas of recent improvement and future focus.
- Be structured for easy export to standard journal software formats.

Generate the journal entry:
`, recentTasks, teamInteractions, skillDevelopment)

	entry, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate journal entry: %w", err)
	}

	return &dto.JournalResponse{JournalEntry: entry}, nil
}

func (s *journalService) recentTasksSummary(ctx context.Context, userID int) string {
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return "No recent tasks to report."
	}

	var summaries []string
	for _, t := range tasks {
		if t.AssigneeID != userID {
			continue
		}
		summaries = append(summaries, fmt.Sprintf("%s (%s)", t.Title, t.Status))
		if len(summaries) == recentTaskLimit {
			break
		}
	}

	if len(summaries) == 0 {
		return "No recent tasks to report."
	}
	return strings.Join(summaries, ", ")
}
