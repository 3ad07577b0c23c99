package ai

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/inteller-studio/zervtek-admin/internal/reqctx"
	"google.golang.org/genai"
)

// SheetGradeClient estimates an overall auction sheet grade from a vehicle's
// description and the inspector's handwritten remarks.
type SheetGradeClient struct {
	model      string
	httpClient *http.Client
}

func NewSheetGradeClient(model string, httpClient *http.Client) *SheetGradeClient {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &SheetGradeClient{model: model, httpClient: httpClient}
}

// EstimateGrade returns the estimated overall grade on the 0-10 auction scale.
func (c *SheetGradeClient) EstimateGrade(ctx context.Context, make, vehicleModel string, year int, remarks string) (float64, error) {
	rid := reqctx.RID(ctx)
	purchaseID := reqctx.PurchaseID(ctx)
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Printf("[sheet] rid=%s purchase=%d stage=client_init err=%v", rid, purchaseID, err)
		return 0, err
	}

	prompt := `あなたは中古車オークションの検査表（出品票）を読み取る査定士です。
車両情報と検査員の記載事項から「総合評価点」を1つだけ推定してください。
最終回答は必ず $<number>$ の形式で数値1つのみを返してください。例: $4.5$
<number> は 0〜10 の範囲、整数または小数1桁まで。判断できない場合は $0$ を返してください。
それ以外の説明文や記号、改行は出さないでください。`

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromText(fmt.Sprintf("車両: %s %s %d年\n記載事項: %s", make, vehicleModel, year, remarks)),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	genStart := time.Now()
	log.Printf("[sheet] rid=%s purchase=%d stage=gemini_start model=%s", rid, purchaseID, c.model)
	res, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		log.Printf("[sheet] rid=%s purchase=%d stage=gemini_fail model=%s err=%v", rid, purchaseID, c.model, err)
		return 0, fmt.Errorf("gemini generate: %w", err)
	}
	log.Printf("[sheet] rid=%s purchase=%d stage=gemini_done model=%s genMs=%d", rid, purchaseID, c.model, time.Since(genStart).Milliseconds())

	grade, err := ParseGrade(res.Text())
	if err != nil {
		log.Printf("[sheet] rid=%s purchase=%d stage=parse_fail raw=%q err=%v", rid, purchaseID, res.Text(), err)
		return 0, err
	}
	return grade, nil
}
