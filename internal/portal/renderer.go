package portal

import (
	"sync"

	"github.com/jonathan/placement-portal/internal/types"
)

// Renderer paints portal state. Implementations must not call back into the App.
type Renderer interface {
	ShowLoginScreen()
	ShowMainApp(user *types.User, menu []types.MenuItem)
	Render(section types.Section, view any)
	SetActiveMenuItem(section types.Section)
	ShowTransientMessage(title, body string, severity types.Severity)
	AppendChatMessage(surface types.ChatSurface, sender, text string)
	OpenDialog(id string)
}

// Output kinds
const (
	KindLoginScreen = "login_screen"
	KindMainApp     = "main_app"
	KindRender      = "render"
	KindActiveMenu  = "active_menu"
	KindMessage     = "message"
	KindChat        = "chat"
	KindDialog      = "dialog"
)

// Chat senders
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Output is one renderer call in serializable form.
type Output struct {
	Kind     string            `json:"kind"`
	Section  types.Section     `json:"section,omitempty"`
	View     any               `json:"view,omitempty"`
	User     *types.User       `json:"user,omitempty"`
	Menu     []types.MenuItem  `json:"menu,omitempty"`
	Title    string            `json:"title,omitempty"`
	Body     string            `json:"body,omitempty"`
	Severity types.Severity    `json:"severity,omitempty"`
	Surface  types.ChatSurface `json:"surface,omitempty"`
	Sender   string            `json:"sender,omitempty"`
	Text     string            `json:"text,omitempty"`
	Dialog   string            `json:"dialog,omitempty"`
}

// SinkRenderer turns every renderer call into an Output passed to Emit.
type SinkRenderer struct {
	Emit func(Output)
}

// ShowLoginScreen implements Renderer.
func (r SinkRenderer) ShowLoginScreen() {
	r.Emit(Output{Kind: KindLoginScreen})
}

// ShowMainApp implements Renderer.
func (r SinkRenderer) ShowMainApp(user *types.User, menu []types.MenuItem) {
	r.Emit(Output{Kind: KindMainApp, User: user, Menu: menu})
}

// Render implements Renderer.
func (r SinkRenderer) Render(section types.Section, view any) {
	r.Emit(Output{Kind: KindRender, Section: section, View: view})
}

// SetActiveMenuItem implements Renderer.
func (r SinkRenderer) SetActiveMenuItem(section types.Section) {
	r.Emit(Output{Kind: KindActiveMenu, Section: section})
}

// ShowTransientMessage implements Renderer.
func (r SinkRenderer) ShowTransientMessage(title, body string, severity types.Severity) {
	r.Emit(Output{Kind: KindMessage, Title: title, Body: body, Severity: severity})
}

// AppendChatMessage implements Renderer.
func (r SinkRenderer) AppendChatMessage(surface types.ChatSurface, sender, text string) {
	r.Emit(Output{Kind: KindChat, Surface: surface, Sender: sender, Text: text})
}

// OpenDialog implements Renderer.
func (r SinkRenderer) OpenDialog(id string) {
	r.Emit(Output{Kind: KindDialog, Dialog: id})
}

// Recorder keeps every Output in memory. It is safe for concurrent use.
type Recorder struct {
	SinkRenderer

	mu      sync.Mutex
	outputs []Output
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.SinkRenderer = SinkRenderer{Emit: r.record}
	return r
}

func (r *Recorder) record(o Output) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs = append(r.outputs, o)
}

// Outputs returns a copy of everything recorded so far.
func (r *Recorder) Outputs() []Output {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Output(nil), r.outputs...)
}

// Messages returns the recorded transient messages.
func (r *Recorder) Messages() []Output {
	return r.filter(func(o Output) bool { return o.Kind == KindMessage })
}

// Renders returns the recorded section renders.
func (r *Recorder) Renders() []Output {
	return r.filter(func(o Output) bool { return o.Kind == KindRender })
}

// Last returns the last output of kind, if any.
func (r *Recorder) Last(kind string) (Output, bool) {
	matches := r.filter(func(o Output) bool { return o.Kind == kind })
	if len(matches) == 0 {
		return Output{}, false
	}
	return matches[len(matches)-1], true
}

// Reset forgets all recorded output.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs = nil
}

func (r *Recorder) filter(keep func(Output) bool) []Output {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Output
	for _, o := range r.outputs {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
