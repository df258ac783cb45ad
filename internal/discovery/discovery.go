// Package discovery finds mappable field paths and their sample values in unknown product feeds.
package discovery

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/MichalMitros/feed-importer/internal/feed"
)

const (
	defaultSampleItems  = 5
	defaultSampleWindow = 3
	defaultSampleLength = 200
)

// NoItemsMessage is returned in result when feed has no recognizable items.
const NoItemsMessage = "no product items found in feed, expected <products><product>, <catalog><item>, <rss><channel><item> or similar structure"

// Result is a discovered tag set.
type Result struct {
	Tags         []string          `json:"tags"`
	SampleValues map[string]string `json:"sampleValues"`
	ItemCount    int               `json:"itemCount"`
	Message      string            `json:"message,omitempty"`
}

// Option is custom configuration of Discoverer.
type Option func(d *Discoverer)

// Discoverer discovers feed tags.
type Discoverer struct {
	sampleItems  int
	sampleWindow int
	sampleLength int
	strategies   []feed.Strategy
}

// NewDiscoverer returns new Discoverer.
func NewDiscoverer(ops ...Option) *Discoverer {
	d := &Discoverer{
		sampleItems:  defaultSampleItems,
		sampleWindow: defaultSampleWindow,
		sampleLength: defaultSampleLength,
		strategies:   feed.DefaultStrategies,
	}

	for _, op := range ops {
		op(d)
	}

	return d
}

// Discover decodes xml feed and discovers its tags.
func (d *Discoverer) Discover(ctx context.Context, r io.Reader) (Result, error) {
	doc, err := feed.Decode(ctx, r)
	if err != nil {
		return Result{}, fmt.Errorf("can't decode feed: %w", err)
	}

	return d.DiscoverItems(feed.Items(doc, d.strategies...)), nil
}

// DiscoverItems discovers tags of already located feed items.
func (d *Discoverer) DiscoverItems(items []*feed.Node) Result {
	if len(items) == 0 {
		return Result{
			Tags:         []string{},
			SampleValues: map[string]string{},
			Message:      NoItemsMessage,
		}
	}

	seen := map[string]struct{}{}
	for _, item := range items[:min(d.sampleItems, len(items))] {
		for _, field := range feed.Flatten(item) {
			seen[field.Path] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	samples := make(map[string]string, len(tags))
	window := items[:min(d.sampleWindow, len(items))]
	for _, tag := range tags {
		for _, item := range window {
			// Value skips empty occurrences, so arrays yield their first filled element.
			if value := feed.Value(item, tag); value != "" {
				samples[tag] = truncate(value, d.sampleLength)
				break
			}
		}
	}

	return Result{
		Tags:         tags,
		SampleValues: samples,
		ItemCount:    len(items),
	}
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}

	return string(runes[:length])
}

// WithSampleItems sets number of items tags are collected from.
func WithSampleItems(n int) Option {
	return func(d *Discoverer) {
		d.sampleItems = n
	}
}

// WithSampleWindow sets number of items sample values are taken from.
func WithSampleWindow(n int) Option {
	return func(d *Discoverer) {
		d.sampleWindow = n
	}
}

// WithStrategies sets custom item location strategies.
func WithStrategies(strategies ...feed.Strategy) Option {
	return func(d *Discoverer) {
		d.strategies = strategies
	}
}
