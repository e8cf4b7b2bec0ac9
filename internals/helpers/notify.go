package helper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

var webhookClient = &http.Client{Timeout: 5 * time.Second}

// PostWebhookJSON mengirim payload JSON ke URL webhook (mis. n8n).
func PostWebhookJSON(url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := webhookClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}

// NotifyWebhookAsync: fire-and-forget. Kegagalan hanya dicatat,
// tidak pernah menggagalkan operasi utama.
func NotifyWebhookAsync(url string, payload any) {
	if strings.TrimSpace(url) == "" {
		return
	}
	go func() {
		if err := PostWebhookJSON(url, payload); err != nil {
			log.Printf("[WARN] webhook gagal: %v", err)
		}
	}()
}
