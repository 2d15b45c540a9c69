package subscription

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AccountUpdateHandler receives the raw account data for every notification.
type AccountUpdateHandler func(account solana.PublicKey, data []byte, slot uint64)

// WebSocketClient maintains an accountSubscribe session against a Solana
// websocket endpoint. Subscriptions survive reconnects.
type WebSocketClient struct {
	url            string
	conn           *websocket.Conn
	mu             sync.RWMutex
	subscriptions  map[uint64]*subscription
	handlers       map[uint64]AccountUpdateHandler
	nextID         uint64
	reconnectDelay time.Duration
	ctx            context.Context
	cancel         context.CancelFunc
	connected      bool
	log            *logrus.Entry
}

type subscription struct {
	id      uint64
	account solana.PublicKey
	subID   uint64 // server-assigned subscription ID
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type notificationMessage struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  struct {
		Result struct {
			Context struct {
				Slot uint64 `json:"slot"`
			} `json:"context"`
			Value struct {
				Data     []interface{} `json:"data"` // [base64, encoding]
				Lamports uint64        `json:"lamports"`
				Owner    string        `json:"owner"`
			} `json:"value"`
		} `json:"result"`
		Subscription uint64 `json:"subscription"`
	} `json:"params"`
}

// NewWebSocketClient connects to wsURL and starts the reader and
// reconnect loops. Close releases both.
func NewWebSocketClient(ctx context.Context, wsURL string) (*WebSocketClient, error) {
	clientCtx, cancel := context.WithCancel(ctx)

	c := &WebSocketClient{
		url:            wsURL,
		subscriptions:  make(map[uint64]*subscription),
		handlers:       make(map[uint64]AccountUpdateHandler),
		nextID:         1,
		reconnectDelay: 5 * time.Second,
		ctx:            clientCtx,
		cancel:         cancel,
		log:            logrus.WithField("component", "ws"),
	}

	if err := c.connect(); err != nil {
		cancel()
		return nil, err
	}

	go c.readLoop()
	go c.reconnectLoop()

	return c, nil
}

func (c *WebSocketClient) connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return errors.Wrapf(err, "dial %s", c.url)
	}

	c.conn = conn
	c.connected = true
	c.log.WithField("url", c.url).Info("websocket connected")
	return nil
}

// SubscribeAccount registers handler for updates to account and returns
// the local subscription ID.
func (c *WebSocketClient) SubscribeAccount(account solana.PublicKey, handler AccountUpdateHandler) (uint64, error) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.mu.Unlock()

	if err := c.sendRequest(subscribeRequest(id, account)); err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.handlers[id] = handler
	c.subscriptions[id] = &subscription{id: id, account: account}
	c.mu.Unlock()

	return id, nil
}

// Unsubscribe cancels a subscription by its local ID.
func (c *WebSocketClient) Unsubscribe(id uint64) error {
	c.mu.Lock()
	sub, ok := c.subscriptions[id]
	if !ok {
		c.mu.Unlock()
		return errors.Errorf("subscription not found: %d", id)
	}
	serverID := sub.subID
	delete(c.subscriptions, id)
	delete(c.handlers, id)
	c.mu.Unlock()

	if serverID == 0 {
		// Never confirmed by the server; nothing to cancel remotely.
		return nil
	}

	return c.sendRequest(rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  "accountUnsubscribe",
		Params:  []interface{}{serverID},
	})
}

func subscribeRequest(id uint64, account solana.PublicKey) rpcRequest {
	return rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  "accountSubscribe",
		Params: []interface{}{
			account.String(),
			map[string]interface{}{
				"encoding":   "base64",
				"commitment": "confirmed",
			},
		},
	}
}

func (c *WebSocketClient) sendRequest(req rpcRequest) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return errors.New("not connected")
	}

	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (c *WebSocketClient) readLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		if conn == nil {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			c.log.WithError(err).Warn("websocket read failed")
			c.mu.Lock()
			c.connected = false
			c.mu.Unlock()
			time.Sleep(100 * time.Millisecond)
			continue
		}

		c.handleMessage(message)
	}
}

func (c *WebSocketClient) handleMessage(data []byte) {
	var notification notificationMessage
	if err := json.Unmarshal(data, &notification); err == nil && notification.Method == "accountNotification" {
		c.handleNotification(notification)
		return
	}

	var response rpcResponse
	if err := json.Unmarshal(data, &response); err != nil {
		c.log.WithError(err).Warn("unparseable websocket message")
		return
	}
	c.handleResponse(response)
}

func (c *WebSocketClient) handleResponse(response rpcResponse) {
	if response.Error != nil {
		c.log.WithField("code", response.Error.Code).Warnf("rpc error: %s", response.Error.Message)
		return
	}

	var serverID uint64
	if err := json.Unmarshal(response.Result, &serverID); err != nil {
		return
	}

	c.mu.Lock()
	if sub, ok := c.subscriptions[response.ID]; ok {
		sub.subID = serverID
	}
	c.mu.Unlock()
}

func (c *WebSocketClient) handleNotification(n notificationMessage) {
	c.mu.RLock()
	var handler AccountUpdateHandler
	var account solana.PublicKey
	for _, sub := range c.subscriptions {
		if sub.subID == n.Params.Subscription {
			handler = c.handlers[sub.id]
			account = sub.account
			break
		}
	}
	c.mu.RUnlock()

	if handler == nil {
		return
	}

	if len(n.Params.Result.Value.Data) < 1 {
		return
	}
	encoded, ok := n.Params.Result.Value.Data[0].(string)
	if !ok {
		return
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		c.log.WithError(err).WithField("account", account).Warn("bad account data encoding")
		return
	}

	handler(account, data, n.Params.Result.Context.Slot)
}

func (c *WebSocketClient) reconnectLoop() {
	ticker := time.NewTicker(c.reconnectDelay)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.mu.RLock()
			connected := c.connected
			c.mu.RUnlock()
			if connected {
				continue
			}

			if err := c.reconnect(); err != nil {
				c.log.WithError(err).Warn("reconnect failed")
			} else {
				c.log.Info("websocket reconnected")
			}
		}
	}
}

func (c *WebSocketClient) reconnect() error {
	if err := c.connect(); err != nil {
		return err
	}

	c.mu.RLock()
	subs := make([]*subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.mu.RUnlock()

	for _, sub := range subs {
		if err := c.sendRequest(subscribeRequest(sub.id, sub.account)); err != nil {
			c.log.WithError(err).WithField("account", sub.account).Warn("resubscribe failed")
		}
	}
	return nil
}

// IsConnected reports whether the websocket session is live.
func (c *WebSocketClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Close tears down the connection and stops the background loops.
func (c *WebSocketClient) Close() error {
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
