package main

import (
	"context"
	"fmt"
	"os/exec"

	notifyrpc "focusdeck/internal/modules/notify/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *notifyrpc.Empty) (*notifyrpc.Metadata, error) {
	return &notifyrpc.Metadata{Name: "desktop", Version: "1.0.0"}, nil
}

// Notify shells out to notify-send when available. Delivery is best
// effort: a missing notify-send reports Delivered=false, not an error.
func (s *server) Notify(ctx context.Context, in *notifyrpc.NotifyRequest) (*notifyrpc.NotifyResponse, error) {
	title := "Focus session finished"
	if in.Kind == "terminated" {
		title = "Focus session stopped early"
	}
	body := fmt.Sprintf("%s: %dm of %dm", in.CourseName, in.DurationSeconds/60, in.TargetSeconds/60)

	bin, err := exec.LookPath("notify-send")
	if err != nil {
		return &notifyrpc.NotifyResponse{Delivered: false, Detail: "notify-send not found"}, nil
	}
	if err := exec.CommandContext(ctx, bin, title, body).Run(); err != nil {
		return &notifyrpc.NotifyResponse{Delivered: false, Detail: err.Error()}, nil
	}
	return &notifyrpc.NotifyResponse{Delivered: true}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: notifyrpc.HandshakeConfig,
		Plugins:         notifyrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
