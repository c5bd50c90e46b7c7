package videos

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"golang.org/x/sync/singleflight"
)

// Video is one entry in the training-video listing.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"published_at"`
}

// Client lists channel videos from the third-party search API. Every
// failure path falls back to the static list; List never returns an
// error to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	channelID  string
	httpClient *http.Client
	sfg        singleflight.Group
	fallback   []Video
}

func NewClient(client *http.Client, baseURL, apiKey, channelID string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		channelID:  channelID,
		httpClient: client,
		fallback:   fallbackVideos(),
	}
}

// List fetches the latest channel videos, collapsing concurrent
// fetches into one upstream call. Any error or an empty result
// substitutes the fallback list.
func (c *Client) List(ctx context.Context) []Video {
	v, err, _ := c.sfg.Do("list", func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		log.Printf("video listing fetch failed, using fallback: %v", err)
		return c.fallback
	}

	videos := v.([]Video)
	if len(videos) == 0 {
		return c.fallback
	}
	return videos
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			PublishedAt string `json:"publishedAt"`
			Thumbnails  struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *Client) fetch(ctx context.Context) ([]Video, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("channelId", c.channelID)
	q.Set("part", "snippet,id")
	q.Set("order", "date")
	q.Set("maxResults", "12")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("video api returned %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode video response: %w", err)
	}

	videos := make([]Video, 0, len(body.Items))
	for _, item := range body.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:          item.ID.VideoID,
			Title:       item.Snippet.Title,
			Thumbnail:   item.Snippet.Thumbnails.Medium.URL,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

func fallbackVideos() []Video {
	return []Video{
		{
			ID:          "fallback-ts07-setup",
			Title:       "Setting Up the Leica TS07 Total Station",
			Thumbnail:   "/images/videos/ts07-setup.jpg",
			PublishedAt: "2025-11-02T09:00:00Z",
		},
		{
			ID:          "fallback-rtk-basics",
			Title:       "GNSS RTK Surveying Basics",
			Thumbnail:   "/images/videos/rtk-basics.jpg",
			PublishedAt: "2025-09-14T09:00:00Z",
		},
		{
			ID:          "fallback-levelling",
			Title:       "Running a Level Loop: Field Procedure",
			Thumbnail:   "/images/videos/level-loop.jpg",
			PublishedAt: "2025-07-21T09:00:00Z",
		},
	}
}
