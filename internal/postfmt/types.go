package postfmt

// Platform identifies a formatting target.
type Platform string

const (
	LinkedIn  Platform = "linkedin"
	Twitter   Platform = "twitter"
	Email     Platform = "email"
	WhatsApp  Platform = "whatsapp"
	Instagram Platform = "instagram"
)

// ThreadSeparator joins the posts of a paginated output.
const ThreadSeparator = "\n\n---\n\n"

// Platforms returns every supported platform in canonical order.
func Platforms() []Platform {
	return []Platform{LinkedIn, Twitter, Email, WhatsApp, Instagram}
}

func (p Platform) String() string { return string(p) }

// FormattedContent is the result of formatting text for one platform.
type FormattedContent struct {
	Text      string   `json:"text" yaml:"text"`
	CharCount int      `json:"charCount" yaml:"charCount"`
	MaxChars  *int     `json:"maxChars,omitempty" yaml:"maxChars,omitempty"`
	Hashtags  []string `json:"hashtags,omitempty" yaml:"hashtags,omitempty"`
	Segments  []string `json:"segments,omitempty" yaml:"segments,omitempty"`
}

// Posts returns the individual posts of the content. Platforms that do not
// paginate have exactly one implicit post equal to Text.
func (c FormattedContent) Posts() []string {
	if len(c.Segments) > 0 {
		return c.Segments
	}
	if c.Text == "" {
		return nil
	}
	return []string{c.Text}
}

// Limit returns MaxChars and whether the platform reported one.
func (c FormattedContent) Limit() (int, bool) {
	if c.MaxChars == nil {
		return 0, false
	}
	return *c.MaxChars, true
}

// Info carries render hints for a platform.
type Info struct {
	Platform    Platform `json:"platform" yaml:"platform"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	Tip         string   `json:"tip" yaml:"tip"`
	Mockup      string   `json:"mockup" yaml:"mockup"`
}

// Formatter abstracts a platform-specific formatting strategy.
type Formatter interface {
	Info() Info
	Format(text string) FormattedContent
}

// New builds a FormattedContent for text, keeping CharCount in sync.
func New(text string) FormattedContent {
	return FormattedContent{Text: text, CharCount: RuneLen(text)}
}

// Empty is the result every strategy returns for blank input.
func Empty(maxChars *int) FormattedContent {
	return FormattedContent{MaxChars: maxChars}
}

// IntPtr returns a pointer to a copy of n.
func IntPtr(n int) *int {
	return &n
}
