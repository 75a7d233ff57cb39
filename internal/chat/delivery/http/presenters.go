package http

import (
	"mall-backend/internal/chat"
	"mall-backend/internal/model"
)

// --- Request DTOs ---

type chatMessageReq struct {
	Role    string              `json:"role" binding:"required,oneof=user assistant system"`
	Content chat.MessageContent `json:"content"`
}

type chatReq struct {
	Model    string           `json:"model"`
	Messages []chatMessageReq `json:"messages"`
}

func (r chatReq) toInput() chat.ChatInput {
	msgs := make([]chat.IncomingMessage, 0, len(r.Messages))
	for _, m := range r.Messages {
		msgs = append(msgs, chat.IncomingMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return chat.ChatInput{
		Model:    r.Model,
		Messages: msgs,
	}
}

type saveMessageReq struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

func (r saveMessageReq) toInput() chat.SaveMessageInput {
	return chat.SaveMessageInput{
		Role:      r.Role,
		Content:   r.Content,
		Timestamp: r.Timestamp,
	}
}

// --- Response DTOs ---

type chatChoiceResp struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}

type productResp struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type chatResp struct {
	Choices  []chatChoiceResp `json:"choices"`
	Products []productResp    `json:"products"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	choice := chatChoiceResp{}
	choice.Message.Role = out.Reply.Role
	choice.Message.Content = out.Reply.Content

	products := make([]productResp, 0, len(out.Products))
	for _, p := range out.Products {
		products = append(products, productResp{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Image:       p.Image,
			Description: p.Description,
		})
	}

	return chatResp{
		Choices:  []chatChoiceResp{choice},
		Products: products,
	}
}

type messageResp struct {
	ID        int64  `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

func newMessageResp(m model.AIMessage) messageResp {
	return messageResp{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

type reloadResp struct {
	Status         string `json:"status"`
	VocabularySize int    `json:"vocabulary_size"`
}
