// Package ai 封装对 Gemini 文本生成服务的调用
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator 文本生成接口，service 层依赖该抽象，便于测试替换
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Gemini 基于 Google Generative AI 的 TextGenerator 实现
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini 创建 Gemini 客户端；modelName 例如 gemini-1.5-flash
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ai: api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("ai: create client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// GenerateText 调用模型生成文本，拼接所有文本 part
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("ai: generate content: %w", err)
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("ai: empty response")
	}
	return out, nil
}

// Close 释放底层连接
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
