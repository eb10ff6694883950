package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cpucatalog/internal/domain"
)

type Telegram struct {
	botToken string
	chatIDs  []string
	client   *http.Client
}

func NewTelegram(botToken string, chatIDs []string) *Telegram {
	return &Telegram{
		botToken: botToken,
		chatIDs:  chatIDs,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *Telegram) Notify(ctx context.Context, cand domain.Candidate) error {
	text := formatMessage(cand)

	for _, chatID := range t.chatIDs {
		if err := t.send(ctx, chatID, text); err != nil {
			return err
		}
	}

	return nil
}

func (t *Telegram) send(ctx context.Context, chatID, text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.botToken)

	body, _ := json.Marshal(map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	})

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %d", resp.StatusCode)
	}

	return nil
}

func formatMessage(cand domain.Candidate) string {
	codename := cand.Codename
	if codename == "" {
		codename = "unrecognized"
	}

	return fmt.Sprintf(`🔎 <b>CPU launch candidate</b>

<b>Source:</b> %s
<b>Model:</b> %s
<b>Launch year:</b> %d
<b>Generation:</b> %s

<b>Announcement:</b>
%s
%s`,
		cand.Announcement.Source,
		cand.Model,
		cand.LaunchYear,
		codename,
		cand.Announcement.Title,
		cand.Announcement.Link,
	)
}
