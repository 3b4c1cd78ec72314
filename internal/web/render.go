package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/caloria/webadmin/internal/domain"
)

//go:embed templates
var templateFS embed.FS

// adminPages extend the base layout; standalonePages are complete documents
// (public site, login, error page).
var (
	adminPages      = []string{"dashboard", "users", "user_detail", "system_status"}
	standalonePages = []string{"login", "index", "privacy", "terms", "error"}
)

// Page is the data every template receives. Data carries the page-specific
// view model.
type Page struct {
	Title      string
	PageTitle  string
	AdminEmail string
	Flashes    []Flash
	Data       any
}

// Renderer executes the embedded HTML templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses all embedded templates up front so a broken template
// fails at startup, not at request time.
func NewRenderer() (*Renderer, error) {
	funcs := funcMap()
	pages := make(map[string]*template.Template)

	for _, name := range adminPages {
		t, err := template.New("base.html").Funcs(funcs).ParseFS(
			templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	for _, name := range standalonePages {
		t, err := template.New(name + ".html").Funcs(funcs).ParseFS(
			templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render executes a page template into a buffer and writes it out, so a
// half-rendered page never reaches the client.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	t, ok := r.pages[name]
	if !ok {
		log.Printf("unknown template %q", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, page); err != nil {
		log.Printf("failed to render %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("failed to write %s: %v", name, err)
	}
}

// RenderError renders the standalone error page, falling back to AppError
// metadata when available.
func (r *Renderer) RenderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong on our side."
	if appErr, ok := domain.AsAppError(err); ok {
		status = appErr.Code
		message = appErr.Message
	} else {
		log.Printf("unhandled error: %v", err)
	}
	r.Render(w, status, "error", Page{
		Title: "Error — Caloria",
		Data:  map[string]any{"Status": status, "Message": message},
	})
}

// Truncate shortens s to at most n runes, appending an ellipsis when the
// value was cut. The slice lengths used by the templates (15, 20, 50) are
// layout constants, not business logic.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"route":    Route,
		"truncate": Truncate,
		"fmtDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"fmtDateTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		"fmtFloat1": func(f float64) string {
			return fmt.Sprintf("%.1f", f)
		},
		"pct": func(f float64) int {
			return int(f*100 + 0.5)
		},
		"quota": func(part, total int) int {
			if total == 0 {
				return 0
			}
			return part * 100 / total
		},
		"floatVal": func(p *float64) float64 {
			if p == nil {
				return 0
			}
			return *p
		},
		"intVal": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
		"subBadge": func(s domain.SubscriptionStatus) domain.Badge {
			b, err := domain.SubscriptionBadge(s)
			if err != nil {
				log.Print(err)
				return domain.Badge{Label: string(s), Color: "secondary", Icon: "question-circle"}
			}
			return b
		},
		"goalBadge": func(g *domain.Goal) domain.Badge {
			if g == nil {
				return domain.Badge{Label: "Not Set", Color: "light", Icon: "dash"}
			}
			b, err := domain.GoalBadge(*g)
			if err != nil {
				log.Print(err)
				return domain.Badge{Label: string(*g), Color: "secondary", Icon: "question-circle"}
			}
			return b
		},
		"activityBadge": func(t domain.ActivityType) domain.Badge {
			b, err := domain.ActivityBadge(t)
			if err != nil {
				log.Print(err)
				return domain.Badge{Label: string(t), Color: "secondary", Icon: "question-circle"}
			}
			return b
		},
		"methodBadge": func(m domain.AnalysisMethod) domain.Badge {
			b, err := domain.MethodBadge(m)
			if err != nil {
				log.Print(err)
				return domain.Badge{Label: string(m), Color: "secondary", Icon: "question-circle"}
			}
			return b
		},
		"payBadge": func(s domain.PaymentStatus) domain.Badge {
			b, err := domain.PaymentBadge(s)
			if err != nil {
				log.Print(err)
				return domain.Badge{Label: string(s), Color: "secondary", Icon: "question-circle"}
			}
			return b
		},
	}
}
