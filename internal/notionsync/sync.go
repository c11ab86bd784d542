// Package notionsync publishes monthly invoice summaries to a Notion database.
package notionsync

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/logger"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/summary"
)

// SyncMonthSummaries upserts one Notion page per analyzed month. The month key
// (YYYY-MM) in the page title identifies the page, so re-running an analysis
// updates existing pages instead of duplicating them.
func SyncMonthSummaries(ctx context.Context, notionClient NotionService, databaseID string, months []summary.MonthSummary, dryRun bool) error {
	log := logger.FromContext(ctx)

	log.Info().
		Int("month_count", len(months)).
		Bool("dry_run", dryRun).
		Msg("Starting month summary sync to Notion")

	pages, err := queryAllNotionPages(ctx, notionClient, databaseID)
	if err != nil {
		return fmt.Errorf("SyncMonthSummaries: %w", err)
	}

	existing := make(map[string]string, len(pages))
	for _, page := range pages {
		if key := extractMonthKey(page); key != "" {
			existing[key] = string(page.ID)
		}
	}

	var created, updated int
	for _, m := range months {
		key := m.Month.String()
		props := MonthSummaryToNotionProperties(m)

		if pageID, ok := existing[key]; ok {
			if dryRun {
				log.Info().Str("month", key).Str("page_id", pageID).Msg("[DRY RUN] Would update Notion page")
				updated++
				continue
			}
			if _, err := notionClient.UpdatePage(ctx, pageID, props); err != nil {
				return fmt.Errorf("SyncMonthSummaries: updating page for %s: %w", key, err)
			}
			updated++
			continue
		}

		if dryRun {
			log.Info().Str("month", key).Msg("[DRY RUN] Would create Notion page")
			created++
			continue
		}
		if _, err := notionClient.CreatePage(ctx, databaseID, props); err != nil {
			return fmt.Errorf("SyncMonthSummaries: creating page for %s: %w", key, err)
		}
		created++
	}

	log.Info().
		Int("created", created).
		Int("updated", updated).
		Msg("Month summary sync finished")

	return nil
}

// queryAllNotionPages queries all pages from a Notion database.
// Handles pagination automatically.
func queryAllNotionPages(ctx context.Context, notionClient NotionService, databaseID string) ([]notionapi.Page, error) {
	var allPages []notionapi.Page
	var cursor notionapi.Cursor

	for {
		req := &notionapi.DatabaseQueryRequest{
			PageSize: 100,
		}
		if cursor != "" {
			req.StartCursor = cursor
		}

		resp, err := notionClient.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return nil, fmt.Errorf("queryAllNotionPages: %w", err)
		}

		allPages = append(allPages, resp.Results...)

		if !resp.HasMore {
			break
		}
		cursor = resp.NextCursor
	}

	return allPages, nil
}
