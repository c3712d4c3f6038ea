package conversation

import (
	"context"
	"strings"
	"time"

	"github.com/nicorai/nicorai/internal/dynview"
)

// knowledgeModel is reported in Reply.Model for locally generated answers
const knowledgeModel = "local-kb"

// KnowledgeBase answers from a small built-in catalogue. Queries about services,
// technologies, case studies or charts come back with a dynamic view; anything
// else gets a plain text answer.
type KnowledgeBase struct {
	// Delay simulates backend latency. Zero answers immediately.
	Delay time.Duration
}

// NewKnowledgeBase creates the default responder
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{}
}

// Respond implements Responder
func (kb *KnowledgeBase) Respond(ctx context.Context, history []Message, query string) (Reply, error) {
	if kb.Delay > 0 {
		select {
		case <-time.After(kb.Delay):
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}

	q := strings.ToLower(query)
	switch {
	case isSmallTalk(q):
		return Reply{Text: "Doing great, thanks for asking! Ask me about our services, technologies or case studies.", Model: knowledgeModel}, nil
	case strings.Contains(q, "chart"):
		return Reply{Text: "Here is the measured impact across recent projects.", View: impactChart(), Model: knowledgeModel}, nil
	case strings.Contains(q, "case stud") || strings.Contains(q, "project"):
		return Reply{Text: "A few projects we are proud of:", View: caseStudyCards(), Model: knowledgeModel}, nil
	case strings.Contains(q, "technolog") || strings.Contains(q, "stack"):
		return Reply{Text: "These are the technologies we build with.", View: technologyTable(), Model: knowledgeModel}, nil
	case strings.Contains(q, "service"):
		return Reply{Text: "Here is an overview of what we offer.", View: serviceTable(), Model: knowledgeModel}, nil
	}

	return Reply{
		Text:  "We build custom AI agents, AR/VR experiences and rapid MVPs. Try asking about `services`, `technologies`, `case studies` or a `chart` of project impact.",
		Model: knowledgeModel,
	}, nil
}

func isSmallTalk(q string) bool {
	q = strings.Trim(q, " !?.")
	switch q {
	case "hi", "hello", "hey", "hoy", "how are you":
		return true
	}
	return false
}

func serviceTable() *dynview.View {
	return &dynview.View{
		Kind:  dynview.KindTable,
		Title: "Services",
		Data: dynview.Data{
			Columns: []string{"Name", "Description"},
			Rows: [][]string{
				{"Custom AI Agents", "Automate tasks and analyze data with tailored AI solutions."},
				{"AR/VR Experiences", "Create immersive simulations for training or entertainment."},
				{"Rapid MVP Development", "Build functional apps in 4-12 weeks."},
			},
		},
	}
}

func technologyTable() *dynview.View {
	return &dynview.View{
		Kind:  dynview.KindTable,
		Title: "Technologies",
		Data: dynview.Data{
			Columns: []string{"Technology", "Purpose"},
			Rows: [][]string{
				{"Python, TensorFlow, PyTorch", "AI/ML development"},
				{"JavaScript, React", "Web applications"},
				{"Unity, Unreal Engine", "AR/VR solutions"},
			},
		},
	}
}

func caseStudyCards() *dynview.View {
	return &dynview.View{
		Kind:  dynview.KindCard,
		Title: "Case Studies",
		Data: dynview.Data{
			Cards: []dynview.Card{
				{Title: "Retail Assistant", Content: "A support agent that resolved 60% of tickets without escalation."},
				{Title: "Factory Training VR", Content: "Immersive onboarding that halved training time."},
				{Title: "Clinic Scheduler MVP", Content: "Launched in six weeks and onboarded 40 clinics."},
			},
		},
	}
}

func impactChart() *dynview.View {
	return &dynview.View{
		Kind:  dynview.KindChart,
		Title: "Project Impact",
		Data: dynview.Data{
			ChartType: "bar",
			Labels:    []string{"Retail Assistant", "Factory Training VR", "Clinic Scheduler"},
			Datasets:  []dynview.Dataset{{Label: "Impact %", Data: []float64{60, 50, 35}}},
		},
	}
}
