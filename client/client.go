package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"k8s.io/klog/v2"
)

const DefaultServerURL = "wss://sim.psim.us/showdown/websocket"

type ShowdownClient struct {
	Conn *websocket.Conn
}

func NewShowdownClient(serverURL string) (*ShowdownClient, error) {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("error al parsear la url del server: %w", err)
	}

	klog.Infof("Conectando a %s", u.String())
	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error al conectar con el websocket: %w", err)
	}

	client := &ShowdownClient{Conn: c}
	klog.Info("conectado exitosamente al servidor de showdown.")

	return client, nil
}

// ReadFrame blocks for the next server frame. A frame addressed to a room
// starts with ">roomid"; that header line is stripped.
func (sc *ShowdownClient) ReadFrame() (string, string, error) {
	_, message, err := sc.Conn.ReadMessage()
	if err != nil {
		return "", "", err
	}
	frame := string(message)
	room := ""
	if strings.HasPrefix(frame, ">") {
		header, rest, _ := strings.Cut(frame, "\n")
		room, frame = strings.TrimPrefix(header, ">"), rest
	}
	klog.V(3).Infof("recibido [%s]: %s", room, frame)
	return room, frame, nil
}

func (sc *ShowdownClient) Send(message string) error {
	klog.V(2).Infof("enviando: %s", message)
	return sc.Conn.WriteMessage(websocket.TextMessage, []byte(message))
}

func (sc *ShowdownClient) JoinRoom(roomID string) error {
	return sc.Send(fmt.Sprintf("|/join %s", roomID))
}

func (sc *ShowdownClient) Close() error {
	return sc.Conn.Close()
}
