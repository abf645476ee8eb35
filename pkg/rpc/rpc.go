// Package rpc serves the engine over JSON-RPC 2.0 with LSP-style
// Content-Length framing.
package rpc

import (
	"context"
	"encoding/json"
	"io"
	"sort"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/walteh/gotwoslash/pkg/config"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/resultcache"
	"github.com/walteh/gotwoslash/pkg/twoslash"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
	"gitlab.com/tozd/go/errors"
)

const (
	MethodRun        = "twoslash/run"
	MethodExtensions = "twoslash/extensions"
	MethodFlush      = "twoslash/flush"
)

// Error codes outside the JSON-RPC reserved range.
const (
	// CodeSampleError carries a twoslasherr.Error in the error data.
	CodeSampleError = -32001
	CodeInternal    = -32002
)

type RunParams struct {
	Code      string `json:"code"`
	Extension string `json:"extension"`
	// CompilerOptions are raw values, read the way inline directives are.
	CompilerOptions map[string]string `json:"compilerOptions,omitempty"`
	Handbook        *options.Handbook `json:"handbookOptions,omitempty"`
}

type RunResult struct {
	*twoslash.Result
	Cached bool `json:"cached"`
}

type FlushResult struct {
	Environments int `json:"environments"`
}

// Service answers requests against one base configuration. Store may be nil.
type Service struct {
	Config twoslash.Config
	Store  *resultcache.Store
}

func (s *Service) Run(ctx context.Context, p *RunParams) (*RunResult, error) {
	cfg := s.Config
	if len(p.CompilerOptions) > 0 || p.Handbook != nil {
		overrides := &config.File{Defaults: &config.DefaultsBlock{
			Compiler: p.CompilerOptions,
			Handbook: p.Handbook,
		}}
		if err := overrides.Apply(ctx, &cfg); err != nil {
			return nil, toRPCError(err)
		}
	}

	if s.Store != nil {
		res, hit, err := s.Store.Run(ctx, p.Code, p.Extension, cfg)
		if err != nil {
			return nil, toRPCError(err)
		}
		return &RunResult{Result: res, Cached: hit}, nil
	}

	res, err := twoslash.Run(ctx, p.Code, p.Extension, cfg)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &RunResult{Result: res}, nil
}

// Extensions lists the accepted extension hints.
func (s *Service) Extensions(ctx context.Context) ([]string, error) {
	exts := s.Config.Extensions
	if exts == nil {
		exts = twoslash.DefaultExtensions
	}
	out := make([]string, 0, len(exts))
	for k := range exts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// Flush drops every cached analyzer environment.
func (s *Service) Flush(ctx context.Context) (*FlushResult, error) {
	if s.Config.Cache == nil {
		return &FlushResult{}, nil
	}
	n := s.Config.Cache.Len()
	s.Config.Cache.Reset()
	zerolog.Ctx(ctx).Info().Int("environments", n).Msg("flushed analyzer environments")
	return &FlushResult{Environments: n}, nil
}

func toRPCError(err error) error {
	if e, ok := twoslasherr.As(err); ok {
		data, merr := json.Marshal(e)
		if merr != nil {
			return &jrpc2.Error{Code: CodeInternal, Message: err.Error()}
		}
		return &jrpc2.Error{Code: CodeSampleError, Message: e.Title, Data: data}
	}
	return &jrpc2.Error{Code: CodeInternal, Message: err.Error()}
}

// SampleError unpacks the structured failure from an error returned by a
// client call, if there is one.
func SampleError(err error) (*twoslasherr.Error, bool) {
	var rpcErr *jrpc2.Error
	if !errors.As(err, &rpcErr) || rpcErr.Code != CodeSampleError {
		return nil, false
	}
	var e twoslasherr.Error
	if json.Unmarshal(rpcErr.Data, &e) != nil {
		return nil, false
	}
	return &e, true
}

func (s *Service) Methods() handler.Map {
	return handler.Map{
		MethodRun:        handler.New(s.Run),
		MethodExtensions: handler.New(s.Extensions),
		MethodFlush:      handler.New(s.Flush),
	}
}

type RPCLogger struct{}

func (me *RPCLogger) LogRequest(ctx context.Context, req *jrpc2.Request) {
	zerolog.Ctx(ctx).Debug().Str("rpc_id", req.ID()).Str("rpc_method", req.Method()).Msg("client request")
}

func (me *RPCLogger) LogResponse(ctx context.Context, res *jrpc2.Response) {
	ev := zerolog.Ctx(ctx).Debug().Str("rpc_id", res.ID())
	if err := res.Error(); err != nil {
		ev = ev.Str("rpc_error", err.Message)
	}
	ev.Msg("server response")
}

// NewServer builds a server whose handlers log through the logger on ctx.
func NewServer(ctx context.Context, svc *Service) *jrpc2.Server {
	logger := zerolog.Ctx(ctx).With().Str("server_id", xid.New().String()).Logger()
	ctx = logger.WithContext(ctx)

	return jrpc2.NewServer(svc.Methods(), &jrpc2.ServerOptions{
		RPCLog:     &RPCLogger{},
		NewContext: func() context.Context { return ctx },
	})
}

// Serve runs svc on r and w until the peer disconnects or ctx ends.
func Serve(ctx context.Context, svc *Service, r io.Reader, w io.WriteCloser) error {
	srv := NewServer(ctx, svc).Start(channel.LSP(r, w))

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			srv.Stop()
		case <-done:
		}
	}()

	if err := srv.Wait(); err != nil && ctx.Err() == nil {
		return errors.Errorf("serving: %w", err)
	}
	return nil
}
