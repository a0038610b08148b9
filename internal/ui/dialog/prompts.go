package dialog

import "sync"

// ======================================================
// Deferred results
// ======================================================

// result delivers exactly one value no matter how many close paths
// race (button handler vs OnClose on replacement).
type result[T any] struct {
	once sync.Once
	ch   chan T
}

func newResult[T any]() *result[T] {
	return &result[T]{ch: make(chan T, 1)}
}

func (r *result[T]) resolve(v T) {
	r.once.Do(func() { r.ch <- v })
}

// ======================================================
// Confirm
// ======================================================

type ConfirmOptions struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
}

// Confirm opens a yes/no dialog and returns a channel that yields the
// outcome once. Dismissal by any other path counts as cancel.
func (m *Manager) Confirm(opts ConfirmOptions) <-chan bool {
	res := newResult[bool]()

	if opts.ConfirmLabel == "" {
		opts.ConfirmLabel = "Confirm"
	}
	if opts.CancelLabel == "" {
		opts.CancelLabel = "Cancel"
	}

	m.Register("__confirm", Config{
		Title:   opts.Title,
		Content: opts.Message,
		Buttons: []Button{
			{Label: opts.ConfirmLabel, Role: "confirm", Handler: func(*Manager) {
				res.resolve(true)
			}},
			{Label: opts.CancelLabel, Role: "cancel", Handler: func(*Manager) {
				res.resolve(false)
			}},
		},
		OnClose: func() {
			res.resolve(false)
		},
	})

	_ = m.Open("__confirm", nil)
	return res.ch
}

// ======================================================
// Prompt
// ======================================================

type PromptResult struct {
	OK    bool
	Value string
}

type PromptOptions struct {
	Title       string
	Message     string
	Placeholder string

	// Validate, when set, gates submission: a non-empty return keeps
	// the dialog open and shows the text as an inline error.
	Validate func(value string) string
}

type promptState struct {
	opts PromptOptions
	res  *result[PromptResult]
}

// Prompt opens a text-input dialog. Submit values via SubmitPrompt;
// any other close path yields {OK:false}.
func (m *Manager) Prompt(opts PromptOptions) <-chan PromptResult {
	res := newResult[PromptResult]()

	st := &promptState{opts: opts, res: res}

	m.Register("__prompt", Config{
		Title:   opts.Title,
		Content: opts.Message,
		Buttons: []Button{
			{Label: "Cancel", Role: "cancel", Handler: func(*Manager) {
				res.resolve(PromptResult{OK: false})
			}},
		},
		OnClose: func() {
			res.resolve(PromptResult{OK: false})
		},
	})

	_ = m.Open("__prompt", map[string]any{"prompt": st})
	return res.ch
}

// SubmitPrompt resolves the active prompt with value, unless the
// prompt's validator rejects it.
func (m *Manager) SubmitPrompt(value string) {
	m.mu.Lock()
	cur := m.active
	m.mu.Unlock()
	if cur == nil || cur.Closing {
		return
	}

	st, ok := cur.Data["prompt"].(*promptState)
	if !ok {
		return
	}

	if st.opts.Validate != nil {
		if msg := st.opts.Validate(value); msg != "" {
			m.setInlineError(msg)
			return
		}
	}

	st.res.resolve(PromptResult{OK: true, Value: value})
	m.Close()
}
