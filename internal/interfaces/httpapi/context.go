package httpapi

import (
	"context"

	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	"golang.org/x/text/message"
)

type contextKey string

const (
	viewerContextKey  contextKey = "viewer"
	sessionContextKey contextKey = "session"
	printerContextKey contextKey = "printer"
)

func withViewer(ctx context.Context, viewer *user.User) context.Context {
	return context.WithValue(ctx, viewerContextKey, viewer)
}

// viewerFromContext returns nil for anonymous requests.
func viewerFromContext(ctx context.Context) *user.User {
	viewer, _ := ctx.Value(viewerContextKey).(*user.User)
	return viewer
}

func withSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

func sessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}

func withPrinter(ctx context.Context, p *message.Printer) context.Context {
	return context.WithValue(ctx, printerContextKey, p)
}

func printerFromContext(ctx context.Context) *message.Printer {
	p, _ := ctx.Value(printerContextKey).(*message.Printer)
	return p
}
