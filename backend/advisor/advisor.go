// Package advisor wraps the external text-generation service that
// produces career advice. The rest of the system treats replies as
// opaque text; the one transformation applied is stripping code-fence
// markers before a reply is stored in chat history.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"zyra/backend/models"
)

var ErrNotConfigured = errors.New("advisory service not configured")

// Advisor generates one advice reply for one composed prompt.
type Advisor interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAIAdvisor calls the OpenAI chat completions API.
type OpenAIAdvisor struct {
	client *openai.Client
}

func NewOpenAIAdvisor(apiKey string) *OpenAIAdvisor {
	if apiKey == "" {
		return &OpenAIAdvisor{}
	}
	return &OpenAIAdvisor{client: openai.NewClient(apiKey)}
}

func (a *OpenAIAdvisor) Generate(ctx context.Context, prompt string) (string, error) {
	if a.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 500,
	})
	if err != nil {
		return "", fmt.Errorf("generate advice: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("generate advice: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// StripCodeFences normalizes a reply before it is stored as a chat
// message.
func StripCodeFences(reply string) string {
	return strings.TrimSpace(strings.ReplaceAll(reply, "```", ""))
}

// summarizeSkills renders "Skill (level%)" entries above the threshold,
// sorted by name so the prompt is stable for the same record.
func summarizeSkills(skills map[string]int, threshold int) string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		if skills[name] > threshold {
			parts = append(parts, fmt.Sprintf("%s (%d%%)", name, skills[name]))
		}
	}
	return strings.Join(parts, ", ")
}

// BuildPrompt composes the single prompt string for one user turn:
// profile fields, skill summaries and the latest message.
func BuildPrompt(record *models.UserRecord, userInput string) string {
	profile := record.Profile

	location := profile.Location
	if location == "" {
		location = "India"
	}
	education := profile.Education
	if education == "" {
		education = "Not specified"
	}
	goal := profile.Goal
	if goal == "" {
		goal = "Professional growth"
	}
	interests := strings.Join(profile.Interests, ", ")
	if interests == "" {
		interests = "General career development"
	}

	technicalSummary := summarizeSkills(record.Skills.Technical, 0)
	if technicalSummary == "" {
		technicalSummary = "None specified"
	}
	softSummary := summarizeSkills(record.Skills.Soft, 50)
	if softSummary == "" {
		softSummary = "Basic communication skills"
	}

	return fmt.Sprintf(`You are Zyra, an expert AI career advisor with deep knowledge of the Indian job market and global career trends.

You're currently helping %s, who has the following profile:

PROFILE INFORMATION:
- Current Role: %s
- Experience Level: %s
- Location: %s
- Education: %s
- Career Goal: %s
- Interests: %s

CURRENT SKILLS:
Technical Skills: %s
Soft Skills: %s

USER'S QUESTION: "%s"

RESPONSE GUIDELINES:
1. Provide personalized, actionable advice based on their profile
2. Include specific salary ranges in Indian context (₹X LPA) when discussing careers
3. Suggest concrete next steps they can take
4. Be encouraging and supportive while being realistic
5. Keep responses focused and under 300 words
6. Use bullet points or numbered lists when providing multiple recommendations
7. Reference current market trends and in-demand skills when relevant
8. If asked about career changes, provide a structured transition plan

Respond in a warm, professional tone as their personal career mentor.`,
		profile.Name, profile.CurrentRole, profile.ExperienceLevel,
		location, education, goal, interests,
		technicalSummary, softSummary, userInput)
}
