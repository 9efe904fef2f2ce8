package goquery

import "github.com/fwojciec/html2ans"

// DefaultParsers returns a fresh set of the built-in parsers. Registering
// them in the returned order yields these try-orders for shared tags:
//
//   - a:          LinkedImageParser, InlineTextParser
//   - blockquote: twitter-tweet, twitter-video, instagram-media,
//     imgur-embed-pub, tiktok-embed, BlockquoteParser
//   - div:        fb-post, fb-video, ContainerParser
//   - figure:     FigureParser, ContainerParser
//   - iframe:     YouTube, Vimeo, Dailymotion, RawHTMLParser
//
// Provider parsers come before the generic parser of the same tag so an
// embed is never converted into a plain quote or container.
func DefaultParsers() []html2ans.ElementParser {
	return []html2ans.ElementParser{
		NewParagraphParser(),
		NewHeaderParser(),
		NewListParser(),
		NewDividerParser(),
		NewCodeParser(),
		NewImageParser(),
		NewFigureParser(),
		NewLinkedImageParser(),
		NewInlineTextParser(),
		NewTextRunParser(),
		NewTwitterTweetParser(),
		NewTwitterVideoParser(),
		NewInstagramParser(),
		NewImgurParser(),
		NewTikTokParser(),
		NewBlockquoteParser(),
		NewFacebookPostParser(),
		NewFacebookVideoParser(),
		NewYouTubeParser(),
		NewVimeoParser(),
		NewDailymotionParser(),
		NewContainerParser(),
		NewRawHTMLParser(),
	}
}
