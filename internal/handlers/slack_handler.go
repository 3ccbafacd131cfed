package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/compliance"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/service"
	slackcmd "github.com/diegoclair/hybrid-attendance-bot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

var badgeEmoji = map[entity.Badge]string{
	entity.BadgeCompliant:    "🟢",
	entity.BadgeMarginal:     "🟡",
	entity.BadgeNonCompliant: "🔴",
	entity.BadgeNoData:       "⚪",
}

var bandEmoji = map[entity.Band]string{
	entity.BandCompliant:    "🥋",
	entity.BandMarginal:     "🟡",
	entity.BandNonCompliant: "🔴",
}

type SlackHandler struct {
	attendanceService contract.AttendanceService
	signingSecret     string
	log               *zap.Logger
}

func New(attendanceService contract.AttendanceService, signingSecret string, log *zap.Logger) *SlackHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlackHandler{
		attendanceService: attendanceService,
		signingSecret:     signingSecret,
		log:               log.Named("slack"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("Rejected request with invalid signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdMark:
		return h.handleMark(ctx, cmd, slashCmd)
	case slackcmd.CmdClear:
		return h.handleClear(ctx, cmd, slashCmd)
	case slackcmd.CmdWeeks:
		return h.handleWeeks(ctx, slashCmd)
	case slackcmd.CmdBelt:
		return h.handleBelt(ctx, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleMark(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	entry, err := h.attendanceService.MarkDay(ctx, slashCmd.UserID, cmd.DateKey, cmd.Category)
	if err != nil {
		return h.serviceErrorResponse("Failed to mark day", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ %s marked as *%s*", entry.DateKey, entry.Category),
	}
}

func (h *SlackHandler) handleClear(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.attendanceService.ClearDay(ctx, slashCmd.UserID, cmd.DateKey); err != nil {
		return h.serviceErrorResponse("Failed to clear day", err)
	}

	day := cmd.DateKey
	if day == "" {
		day = "Today"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🧹 %s cleared, it counts as remote again", day),
	}
}

func (h *SlackHandler) handleWeeks(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	report, err := h.attendanceService.GetReport(ctx, slashCmd.UserID)
	if err != nil {
		return h.serviceErrorResponse("Failed to build report", err)
	}

	var weeks strings.Builder
	weeks.WriteString("*On-campus share, most recent week first:*\n")
	for _, week := range report.Weeks {
		weeks.WriteString(fmt.Sprintf("%s `%s` %s  (%d campus, %d remote, %d ooo)\n",
			badgeEmoji[week.Badge],
			week.Span.Label,
			formatPercent(week.Percent),
			week.Summary.OnCampus,
			week.Summary.Remote,
			week.Summary.OutOfOffice,
		))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         weeks.String(),
	}
}

func (h *SlackHandler) handleBelt(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	report, err := h.attendanceService.GetReport(ctx, slashCmd.UserID)
	if err != nil {
		return h.serviceErrorResponse("Failed to build report", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("%s Your belt is *%d%%* (%s), best 8 of the last %d weeks",
			bandEmoji[report.Band], report.Belt, report.Band, len(report.Weeks)),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serviceErrorResponse shows validation errors to the user as they are and
// hides everything else behind prefix.
func (h *SlackHandler) serviceErrorResponse(prefix string, err error) *slack.Msg {
	switch {
	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrWeekendDay),
		errors.Is(err, service.ErrMarkNotFound),
		errors.Is(err, service.ErrUserRequired),
		errors.Is(err, compliance.ErrInvalidDate):
		return h.createErrorResponse(err.Error())
	}

	h.log.Error(prefix, zap.Error(err))
	return h.createErrorResponse(prefix)
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", zap.Error(err))
	}
}

func formatPercent(p *int) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", *p)
}
