package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhibi-tui/internal/api"
	"zhibi-tui/internal/constant"
	"zhibi-tui/internal/dto"
	"zhibi-tui/internal/entity"
	"zhibi-tui/internal/pkg/logger"
)

func newTestChat(t *testing.T, handler http.HandlerFunc) chatModel {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, logger.NewNopLogger())
	return newChatModel(client, logger.NewNopLogger(), 42)
}

func chatReplyHandler(reply string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.ChatResponse{Response: reply})
	}
}

func TestSendBlankDraftIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "spaces", text: "   "},
		{name: "tabs and newlines", text: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("no network call expected")
			})

			for _, mode := range entity.Modes() {
				m.switchMode(mode)
				cmd := m.send(tt.text)
				assert.Nil(t, cmd)
				assert.Equal(t, 0, m.history.Len(mode))
				assert.False(t, m.loading)
			}
		})
	}
}

func TestSendWhileWaitingIsNoOpAcrossModes(t *testing.T) {
	m := newTestChat(t, chatReplyHandler("好的"))

	cmd := m.send("第一问")
	require.NotNil(t, cmd)
	require.True(t, m.loading)

	// The gate is global: a request outstanding in general blocks sends in
	// every other mode too.
	m.switchMode(entity.ModeAnalyze)
	assert.Nil(t, m.send("第二问"))
	assert.Equal(t, 0, m.history.Len(entity.ModeAnalyze))
	assert.Equal(t, 1, m.history.Len(entity.ModeGeneral))
}

func TestSendSuccessAppendsUserThenAssistant(t *testing.T) {
	m := newTestChat(t, chatReplyHandler("**亮点**：论证层层递进。"))
	m.switchMode(entity.ModeAnalyze)

	cmd := m.send("分析这段素材的论证逻辑")
	require.NotNil(t, cmd)

	m.receive(cmd().(chatResponseMsg))

	analyze := m.history.Messages(entity.ModeAnalyze)
	require.Len(t, analyze, 2)
	assert.Equal(t, entity.Message{Role: entity.RoleUser, Content: "分析这段素材的论证逻辑"}, analyze[0])
	assert.Equal(t, entity.Message{Role: entity.RoleAssistant, Content: "**亮点**：论证层层递进。"}, analyze[1])
	assert.Equal(t, 0, m.history.Len(entity.ModeGeneral))
	assert.Equal(t, 0, m.history.Len(entity.ModeRewrite))
	assert.False(t, m.loading)
}

func TestLateReplyLandsInOriginMode(t *testing.T) {
	m := newTestChat(t, chatReplyHandler("改写完成"))
	m.switchMode(entity.ModeRewrite)

	cmd := m.send("把这段话改写成排比句，增强气势")
	require.NotNil(t, cmd)

	// User browses another tab while the request is in flight.
	m.switchMode(entity.ModeGeneral)
	m.receive(cmd().(chatResponseMsg))

	assert.Equal(t, 2, m.history.Len(entity.ModeRewrite))
	assert.Equal(t, 0, m.history.Len(entity.ModeGeneral))
	assert.Equal(t, entity.ModeGeneral, m.mode)
}

func TestSendNetworkFailureAppendsFixedReply(t *testing.T) {
	srv := httptest.NewServer(nil)
	client := api.NewClient(srv.URL, logger.NewNopLogger())
	srv.Close() // requests now fail at the transport layer
	m := newChatModel(client, logger.NewNopLogger(), 42)

	cmd := m.send("你好")
	require.NotNil(t, cmd)

	m.receive(cmd().(chatResponseMsg))

	general := m.history.Messages(entity.ModeGeneral)
	require.Len(t, general, 2)
	assert.Equal(t, entity.RoleUser, general[0].Role)
	assert.Equal(t, entity.RoleAssistant, general[1].Role)
	assert.Equal(t, constant.ChatNetworkErrorReply, general[1].Content)
	assert.False(t, m.loading)
}

func TestSwitchModeNeverMutatesHistories(t *testing.T) {
	m := newTestChat(t, chatReplyHandler("好的"))

	cmd := m.send("问题一")
	m.receive(cmd().(chatResponseMsg))
	m.switchMode(entity.ModeAnalyze)
	cmd = m.send("问题二")
	m.receive(cmd().(chatResponseMsg))

	for i := 0; i < 10; i++ {
		m.nextMode(1)
	}

	assert.Equal(t, 2, m.history.Len(entity.ModeGeneral))
	assert.Equal(t, 2, m.history.Len(entity.ModeAnalyze))
	assert.Equal(t, 0, m.history.Len(entity.ModeRewrite))
	assert.Equal(t, "问题一", m.history.Messages(entity.ModeGeneral)[0].Content)
}

func TestSendClearsDraft(t *testing.T) {
	m := newTestChat(t, chatReplyHandler("好的"))
	m.input.SetValue("帮我把这段素材缩写到100字以内")

	cmd := m.sendCurrent()
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.input.Value())
}

func TestSendCurrentFallsBackToPreset(t *testing.T) {
	m := newTestChat(t, chatReplyHandler("好的"))
	m.switchMode(entity.ModeAnalyze)
	m.presetCursor = 1

	cmd := m.sendCurrent()
	require.NotNil(t, cmd)

	analyze := m.history.Messages(entity.ModeAnalyze)
	require.Len(t, analyze, 1)
	assert.Equal(t, constant.PresetQuestions[entity.ModeAnalyze][1], analyze[0].Content)
}
