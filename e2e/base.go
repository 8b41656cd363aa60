package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const readTimeout = 5 * time.Second

type BaseBrokerSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseBrokerSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BrokerURL == "" {
		s.T().Skip("E2E_BROKER_URL not set, skipping end-to-end suite")
	}
}

func (s *BaseBrokerSuite) step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// Peer is one WAMP client connected to the broker.
type Peer struct {
	s  *BaseBrokerSuite
	ws *websocket.Conn
}

// WithPeer dials the broker, consumes the WELCOME frame and hands the peer over.
func (s *BaseBrokerSuite) WithPeer(name, nick string, fn func(p *Peer, sessionID string)) {
	s.step(s.T(), name)

	header := http.Header{}
	if nick != "" {
		header.Add("Cookie", "name="+nick)
	}
	dialer := websocket.Dialer{Subprotocols: []string{"wamp"}, HandshakeTimeout: readTimeout}
	ws, _, err := dialer.Dial(s.Config.BrokerURL, header)
	s.Require().NoError(err, "Failed to connect to broker at "+s.Config.BrokerURL)
	defer ws.Close()

	p := &Peer{s: s, ws: ws}
	welcome := p.Read()
	s.Require().Equal(int64(0), welcome.Get("0").Int())
	fn(p, welcome.Get("1").String())
}

func (p *Peer) Send(frame ...any) {
	data, err := json.Marshal(frame)
	p.s.Require().NoError(err)
	p.s.Require().NoError(p.ws.WriteMessage(websocket.TextMessage, data))
}

func (p *Peer) Read() gjson.Result {
	p.s.Require().NoError(p.ws.SetReadDeadline(time.Now().Add(readTimeout)))
	_, data, err := p.ws.ReadMessage()
	p.s.Require().NoError(err)
	p.s.T().Logf("<- %s", data)
	return gjson.ParseBytes(data)
}

// Until reads frames until match accepts one.
func (p *Peer) Until(match func(frame gjson.Result) bool) gjson.Result {
	for {
		frame := p.Read()
		if match(frame) {
			return frame
		}
	}
}

// WithGrpc provides a connection to the broker gRPC endpoint.
func (s *BaseBrokerSuite) WithGrpc(name string, fn func(ctx context.Context, conn *grpc.ClientConn)) {
	if s.Config.GrpcAddr == "" {
		s.T().Skip("E2E_GRPC_ADDR not set")
	}
	s.step(s.T(), name)

	conn, err := grpc.NewClient(s.Config.GrpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.GrpcAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()
	fn(ctx, conn)
}
