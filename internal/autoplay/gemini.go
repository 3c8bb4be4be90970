package autoplay

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/dragon-repeller/internal/models"
	"github.com/tatianab/dragon-repeller/internal/session"
	"google.golang.org/api/option"
)

//go:embed prompts/choose_action.txt
var chooseActionPrompt string

var chooseActionTmpl = template.Must(template.New("choose_action").Parse(chooseActionPrompt))

const historyLen = 8

// Gemini asks a Gemini model for each move. Replies that are not an offered
// action id are replaced by the fallback policy's choice.
type Gemini struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	fallback Player
	history  []Turn
}

// NewGemini connects to the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string, fallback Player) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	m := client.GenerativeModel(model)
	m.SetTemperature(0.4)
	return &Gemini{client: client, model: m, fallback: fallback}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

// Observe records a finished turn so later prompts carry recent history.
func (g *Gemini) Observe(t Turn) {
	g.history = append(g.history, t)
	if len(g.history) > historyLen {
		g.history = g.history[len(g.history)-historyLen:]
	}
}

func (g *Gemini) ChooseAction(ctx context.Context, v session.View) (string, error) {
	prompt, err := renderPrompt(v, g.history)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("gemini: %v; using fallback", err)
		return g.fallback.ChooseAction(ctx, v)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Printf("gemini: empty reply; using fallback")
		return g.fallback.ChooseAction(ctx, v)
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		log.Printf("gemini: unexpected reply type %T; using fallback", resp.Candidates[0].Content.Parts[0])
		return g.fallback.ChooseAction(ctx, v)
	}

	if id, ok := parseReply(string(text), v); ok {
		return id, nil
	}
	log.Printf("gemini: %q is not an offered action; using fallback", string(text))
	return g.fallback.ChooseAction(ctx, v)
}

// options lists what the player may do: the location's buttons plus the
// store's sell counter.
func options(v session.View) []models.Choice {
	opts := append([]models.Choice(nil), v.Actions...)
	if v.Location == models.LocationStore {
		opts = append(opts, models.Choice{Label: "Sell oldest weapon (15 gold)", Action: "sellWeapon"})
	}
	return opts
}

func renderPrompt(v session.View, history []Turn) (string, error) {
	var buf bytes.Buffer
	err := chooseActionTmpl.Execute(&buf, struct {
		View    session.View
		History []Turn
		Options []models.Choice
	}{v, history, options(v)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseReply extracts an offered action id from a model reply.
func parseReply(reply string, v session.View) (string, bool) {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.Trim(strings.TrimSpace(s), "`\"'.")
	for _, c := range options(v) {
		if strings.EqualFold(s, c.Action) {
			return c.Action, true
		}
	}
	return "", false
}
