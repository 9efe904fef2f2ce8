package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/html2ans"
)

// Provider identifies an oEmbed provider. The referent id of a reference
// element is the canonical URL of the embedded item; appending it to
// Endpoint yields the oEmbed request for it.
type Provider struct {
	Name     string
	Endpoint string
}

// Known oEmbed providers.
var (
	Twitter       = Provider{Name: "twitter", Endpoint: "https://publish.twitter.com/oembed?url="}
	Instagram     = Provider{Name: "instagram", Endpoint: "https://api.instagram.com/oembed?url="}
	Imgur         = Provider{Name: "imgur", Endpoint: "https://api.imgur.com/oembed.json?url="}
	TikTok        = Provider{Name: "tiktok", Endpoint: "https://www.tiktok.com/oembed?url="}
	FacebookPost  = Provider{Name: "facebook-post", Endpoint: "https://www.facebook.com/plugins/post/oembed.json/?url="}
	FacebookVideo = Provider{Name: "facebook-video", Endpoint: "https://www.facebook.com/plugins/video/oembed.json/?url="}
	YouTube       = Provider{Name: "youtube", Endpoint: "https://www.youtube.com/oembed?url="}
	Vimeo         = Provider{Name: "vimeo", Endpoint: "https://vimeo.com/api/oembed.json?url="}
	Dailymotion   = Provider{Name: "dailymotion", Endpoint: "https://www.dailymotion.com/services/oembed?url="}
)

// EmbedParser converts a provider's embed markup, recognised by a CSS
// class, into a reference element.
//
// An embed without a usable link is either an unpopulated shell (e.g. a
// blockquote containing only &nbsp;), which is claimed with an empty payload
// so it is dropped, or markup with real text, which is declined so a generic
// parser keeps the text.
type EmbedParser struct {
	Tags     []string
	Class    string
	Provider Provider

	locate func(el html2ans.Element) string
}

// ApplicableElements returns the tags the parser is registered under.
func (p *EmbedParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a reference element.
func (p *EmbedParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	if !el.HasClass(p.Class) {
		return html2ans.NoMatch(), nil
	}
	url := p.locate(el)
	if url == "" {
		if isBlank(el.Text()) {
			return html2ans.Match(), nil
		}
		return html2ans.NoMatch(), nil
	}
	return html2ans.Match(referenceElement(p.Provider, url)), nil
}

func (p *EmbedParser) String() string {
	return fmt.Sprintf("EmbedParser(%s .%s)", p.Provider.Name, p.Class)
}

// NewTwitterTweetParser creates a parser for <blockquote class="twitter-tweet">.
func NewTwitterTweetParser() *EmbedParser {
	return &EmbedParser{
		Tags:     []string{"blockquote"},
		Class:    "twitter-tweet",
		Provider: Twitter,
		locate:   lastLinkContaining("/status/"),
	}
}

// NewTwitterVideoParser creates a parser for <blockquote class="twitter-video">.
func NewTwitterVideoParser() *EmbedParser {
	return &EmbedParser{
		Tags:     []string{"blockquote"},
		Class:    "twitter-video",
		Provider: Twitter,
		locate:   lastLinkContaining("/status/"),
	}
}

// NewInstagramParser creates a parser for <blockquote class="instagram-media">.
func NewInstagramParser() *EmbedParser {
	return &EmbedParser{
		Tags:     []string{"blockquote"},
		Class:    "instagram-media",
		Provider: Instagram,
		locate:   firstOf(attrValue("data-instgrm-permalink"), lastLinkContaining("instagram.com/")),
	}
}

// NewImgurParser creates a parser for <blockquote class="imgur-embed-pub">.
// The data-id attribute alone is not enough; the embed must carry its link.
func NewImgurParser() *EmbedParser {
	return &EmbedParser{
		Tags:     []string{"blockquote"},
		Class:    "imgur-embed-pub",
		Provider: Imgur,
		locate:   lastLinkContaining("imgur.com/"),
	}
}

// NewTikTokParser creates a parser for <blockquote class="tiktok-embed">.
func NewTikTokParser() *EmbedParser {
	return &EmbedParser{
		Tags:     []string{"blockquote"},
		Class:    "tiktok-embed",
		Provider: TikTok,
		locate:   firstOf(attrValue("cite"), lastLinkContaining("tiktok.com/")),
	}
}

// NewFacebookPostParser creates a parser for <div class="fb-post">.
func NewFacebookPostParser() *EmbedParser {
	return &EmbedParser{
		Tags:     []string{"div"},
		Class:    "fb-post",
		Provider: FacebookPost,
		locate:   attrValue("data-href"),
	}
}

// NewFacebookVideoParser creates a parser for <div class="fb-video">.
func NewFacebookVideoParser() *EmbedParser {
	return &EmbedParser{
		Tags:     []string{"div"},
		Class:    "fb-video",
		Provider: FacebookVideo,
		locate:   attrValue("data-href"),
	}
}

// IframeParser converts a provider's player <iframe> into a reference
// element. Iframes from other sources are declined.
type IframeParser struct {
	Tags     []string
	Provider Provider

	pattern   *regexp.Regexp
	canonical string
}

// ApplicableElements returns the tags the parser is registered under.
func (p *IframeParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a reference element.
func (p *IframeParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	m := p.pattern.FindStringSubmatch(attr(el, "src"))
	if m == nil {
		return html2ans.NoMatch(), nil
	}
	return html2ans.Match(referenceElement(p.Provider, p.canonical+m[1])), nil
}

func (p *IframeParser) String() string {
	return fmt.Sprintf("IframeParser(%s)", p.Provider.Name)
}

var (
	youtubeSrc     = regexp.MustCompile(`^(?:https?:)?//(?:www\.)?youtube(?:-nocookie)?\.com/embed/([\w-]+)`)
	vimeoSrc       = regexp.MustCompile(`^(?:https?:)?//player\.vimeo\.com/video/(\d+)`)
	dailymotionSrc = regexp.MustCompile(`^(?:https?:)?//(?:www\.)?dailymotion\.com/embed/video/(\w+)`)
)

// NewYouTubeParser creates a parser for YouTube player iframes.
func NewYouTubeParser() *IframeParser {
	return &IframeParser{
		Tags:      []string{"iframe"},
		Provider:  YouTube,
		pattern:   youtubeSrc,
		canonical: "https://www.youtube.com/watch?v=",
	}
}

// NewVimeoParser creates a parser for Vimeo player iframes.
func NewVimeoParser() *IframeParser {
	return &IframeParser{
		Tags:      []string{"iframe"},
		Provider:  Vimeo,
		pattern:   vimeoSrc,
		canonical: "https://vimeo.com/",
	}
}

// NewDailymotionParser creates a parser for Dailymotion player iframes.
func NewDailymotionParser() *IframeParser {
	return &IframeParser{
		Tags:      []string{"iframe"},
		Provider:  Dailymotion,
		pattern:   dailymotionSrc,
		canonical: "https://www.dailymotion.com/video/",
	}
}

func referenceElement(p Provider, url string) html2ans.ContentElement {
	return html2ans.ContentElement{
		"type": "reference",
		"referent": html2ans.ContentElement{
			"id":       url,
			"type":     p.Name,
			"provider": p.Endpoint,
			"service":  "oembed",
		},
	}
}

// lastLinkContaining returns the href of the last descendant link whose
// href contains substr. Embeds put the permalink last, after author links.
func lastLinkContaining(substr string) func(html2ans.Element) string {
	return func(el html2ans.Element) string {
		url := ""
		for _, a := range el.FindAll("a[href]") {
			if href := attr(a, "href"); strings.Contains(href, substr) {
				url = href
			}
		}
		return url
	}
}

func attrValue(name string) func(html2ans.Element) string {
	return func(el html2ans.Element) string {
		return attr(el, name)
	}
}

func firstOf(locators ...func(html2ans.Element) string) func(html2ans.Element) string {
	return func(el html2ans.Element) string {
		for _, locate := range locators {
			if url := locate(el); url != "" {
				return url
			}
		}
		return ""
	}
}
