package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"axis-server/models"
)

const defaultInsightModel = "gemini-2.5-flash"

// IAInsight is the structured analysis returned for a dashboard dataset.
type IAInsight struct {
	Findings           []string `json:"findings"`
	Interpretation     string   `json:"interpretation"`
	Alerts             []string `json:"alerts"`
	Recommendations    []string `json:"recommendations"`
	SuggestedQuestions []string `json:"suggestedQuestions"`
}

// LeadScore is a closing-potential rating, always within [1,5].
type LeadScore struct {
	Stars int `json:"stars"`
}

// InsightService talks to the Gemini backend. Both request types are
// best-effort: any failure degrades to a fixed fallback payload, never to
// an error surfaced to the caller.
type InsightService struct {
	client *genai.Client
	model  string
}

var Insights *InsightService

// InitializeInsights creates the shared Gemini client. A missing API key
// is an error; the caller decides whether to continue without insights.
func InitializeInsights(apiKey, model string) error {
	if apiKey == "" {
		return fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultInsightModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	Insights = &InsightService{client: client, model: model}
	return nil
}

// FallbackInsight is returned whenever the backend is unreachable, its
// response is malformed, or the service was never configured.
func FallbackInsight() IAInsight {
	return IAInsight{
		Findings:           []string{"Error al procesar datos"},
		Interpretation:     "No se pudo generar un análisis en este momento.",
		Alerts:             []string{"Servicio de análisis temporalmente fuera de línea"},
		Recommendations:    []string{"Verifica la conexión a internet", "Reintenta en unos minutos"},
		SuggestedQuestions: []string{},
	}
}

// cleanJSONResponse strips markdown code fences the model sometimes wraps
// around its JSON payload.
func cleanJSONResponse(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func stringArraySchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
}

// AnalyzeData asks the model for a structured read of one dashboard
// dataset. Single attempt, no retry; failures fall back.
func (s *InsightService) AnalyzeData(ctx context.Context, chartTitle string, data interface{}) IAInsight {
	payload, err := json.Marshal(data)
	if err != nil {
		return FallbackInsight()
	}

	prompt := fmt.Sprintf(`Analiza estos datos de CRM de la plataforma AXIS: %s.
Datos actuales: %s
Responde estrictamente en formato JSON siguiendo el esquema indicado.
Asegúrate de que las recomendaciones sean accionables para un equipo comercial B2B.`, chartTitle, payload)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"findings":           stringArraySchema(),
				"interpretation":     {Type: genai.TypeString},
				"alerts":             stringArraySchema(),
				"recommendations":    stringArraySchema(),
				"suggestedQuestions": stringArraySchema(),
			},
			Required: []string{"findings", "interpretation", "alerts", "recommendations", "suggestedQuestions"},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, config)
	if err != nil {
		log.Printf("insight analysis failed: %v", err)
		return FallbackInsight()
	}

	var insight IAInsight
	if err := json.Unmarshal([]byte(cleanJSONResponse(resp.Text())), &insight); err != nil {
		log.Printf("insight response malformed: %v", err)
		return FallbackInsight()
	}
	return insight
}

// ScoreLead rates a contact's closing potential from its interaction
// history. The result is clamped to [1,5] regardless of what the backend
// returns; failures score 1 star.
func (s *InsightService) ScoreLead(ctx context.Context, contact models.Contact, interactions []models.Interaction) LeadScore {
	history := "Sin interacciones previas."
	if len(interactions) > 0 {
		var sb strings.Builder
		for _, in := range interactions {
			sb.WriteString("- ")
			sb.WriteString(in.Summary)
			sb.WriteString("\n")
		}
		history = sb.String()
	}

	prompt := fmt.Sprintf(`Actúa como un Gerente de Ventas Senior de AXIS CRM.
Evalúa el potencial de cierre de este lead: %s de %s.

HISTORIAL DE INTERACCIONES:
%s
CRITERIO:
1 estrella: Prospecto frío o negativo.
5 estrellas: Negociación avanzada con alta probabilidad de cierre inmediato.

Devuelve JSON: { "stars": número }`, contact.Name, contact.CompanyName, history)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"stars": {Type: genai.TypeInteger},
			},
			Required: []string{"stars"},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, config)
	if err != nil {
		log.Printf("lead score failed: %v", err)
		return LeadScore{Stars: 1}
	}

	var score LeadScore
	if err := json.Unmarshal([]byte(cleanJSONResponse(resp.Text())), &score); err != nil {
		log.Printf("lead score response malformed: %v", err)
		return LeadScore{Stars: 1}
	}
	return LeadScore{Stars: ClampStars(score.Stars)}
}

// ClampStars bounds a rating to [1,5].
func ClampStars(stars int) int {
	if stars < 1 {
		return 1
	}
	if stars > 5 {
		return 5
	}
	return stars
}
