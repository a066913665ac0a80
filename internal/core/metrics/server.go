package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// readHeaderTimeout 指标服务读取请求头的超时
const readHeaderTimeout = 5 * time.Second

// Server 指标 HTTP 服务
type Server struct {
	mu       sync.Mutex
	addr     string
	path     string
	handler  http.Handler
	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

// NewServer 创建指标服务
func NewServer(addr, path string, c *Collector) *Server {
	return &Server{
		addr:    addr,
		path:    path,
		handler: c.Handler(),
	}
}

// Start 开始监听
func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return errors.New("metrics server already started")
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen metrics %s: %w", s.addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(s.path, s.handler)

	s.listener = ln
	s.srv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	s.done = make(chan struct{})

	go func(srv *http.Server, done chan struct{}) {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("指标服务异常退出", "error", err)
		}
	}(s.srv, s.done)

	logger.Info("指标服务已启动", "addr", ln.Addr().String(), "path", s.path)
	return nil
}

// Stop 关闭服务并等待后台 goroutine 退出
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.srv, s.done
	s.srv, s.listener, s.done = nil, nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	err := srv.Shutdown(ctx)
	select {
	case <-done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	logger.Info("指标服务已停止")
	return err
}

// Addr 返回实际监听地址，未启动时返回空字符串
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
