// Package mcpserver wires the transcript pipeline to the Model Context
// Protocol: tool dispatch, progress notifications and transcript resources.
package mcpserver

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	repository "github.com/Steve-651/mcp-youtube/internal/repository/transcript"
	transcriptsvc "github.com/Steve-651/mcp-youtube/internal/service/transcript"
)

const (
	serverName    = "mcp-youtube"
	serverVersion = "1.0.0"

	// resourceScheme addresses one cached transcript by video ID
	resourceScheme = "transcript://"
)

// Server exposes transcript extraction over MCP
type Server struct {
	mcp           *server.MCPServer
	transcriptSvc transcriptsvc.Service
	store         repository.Store
	pageSize      int
}

// New creates the MCP server and registers its tools and resources
func New(svc transcriptsvc.Service, store repository.Store, pageSize int) *Server {
	s := &Server{
		transcriptSvc: svc,
		store:         store,
		pageSize:      pageSize,
	}

	s.mcp = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	s.mcp.AddTool(
		mcp.NewTool("transcribe",
			mcp.WithDescription("Extract the transcript of a YouTube video and cache it locally. Returns a summary; fetch the full transcript afterwards with get_transcript."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("YouTube video URL"),
			),
		),
		s.handleTranscribe,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_transcript",
			mcp.WithDescription("Return the full cached transcript for a video ID."),
			mcp.WithString("video_id",
				mcp.Required(),
				mcp.Description("YouTube video ID returned by transcribe"),
			),
		),
		s.handleGetTranscript,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_transcripts",
			mcp.WithDescription("List video IDs with a cached transcript, one page at a time."),
			mcp.WithString("cursor",
				mcp.Description("Opaque cursor from a previous page, omit for the first page"),
			),
		),
		s.handleListTranscripts,
	)

	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			resourceScheme+"{video_id}",
			"Cached YouTube transcript",
			mcp.WithTemplateDescription("Full transcript record for one video, as stored on disk"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleReadTranscript,
	)

	return s
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleTranscribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	videoURL, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary, err := s.transcriptSvc.Transcribe(ctx, videoURL, s.progressSink(ctx, request))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(summary)
}

func (s *Server) handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	videoID, err := request.RequireString("video_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	record, err := s.transcriptSvc.Get(videoID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(record)
}

// handleListTranscripts computes the page fresh from the store on every
// call; nothing is cached server-side, so the listing never goes stale.
func (s *Server) handleListTranscripts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := s.store.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := buildPage(ids, request.GetString("cursor", ""), s.pageSize)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(page)
}

func (s *Server) handleReadTranscript(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	videoID := strings.TrimPrefix(request.Params.URI, resourceScheme)

	record, err := s.transcriptSvc.Get(videoID)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// progressSink adapts the client's progress token, when present, into the
// assembly service's progress callback. Notification failures are ignored;
// progress is best-effort and never affects the extraction outcome.
func (s *Server) progressSink(ctx context.Context, request mcp.CallToolRequest) transcriptsvc.ProgressFunc {
	if request.Params.Meta == nil || request.Params.Meta.ProgressToken == nil {
		return nil
	}
	token := request.Params.Meta.ProgressToken

	srv := server.ServerFromContext(ctx)
	if srv == nil {
		return nil
	}

	return func(progress, total int, message string) {
		_ = srv.SendNotificationToClient(ctx, "notifications/progress", map[string]any{
			"progressToken": token,
			"progress":      progress,
			"total":         total,
			"message":       message,
		})
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
