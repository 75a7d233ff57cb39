package usecase

import (
	"context"

	"mall-backend/internal/model"
)

// defaultProducts is the stock catalog inserted on first startup.
var defaultProducts = []model.Product{
	{
		ID:          "1",
		Name:        "华为手机",
		Price:       1999.0,
		Image:       "hw.png",
		Description: "高性能旗舰手机，搭载麒麟芯片，6.5英寸全面屏，5000mAh大电池",
	},
	{
		ID:          "2",
		Name:        "小米手机",
		Price:       4399.0,
		Image:       "xm.png",
		Description: "性价比之王，骁龙处理器，1亿像素相机，120Hz刷新率",
	},
	{
		ID:          "3",
		Name:        "苹果手机",
		Price:       5999.0,
		Image:       "pg.png",
		Description: "iOS生态系统，A系列芯片，Face ID面部识别，超视网膜显示屏",
	},
	{
		ID:          "4",
		Name:        "花朵卡片",
		Price:       9.9,
		Image:       "flower.png",
		Description: "六一电子贺卡，精美花朵设计，可自定义祝福语",
	},
	{
		ID:          "6",
		Name:        "智能手表",
		Price:       899.0,
		Image:       "watch.png",
		Description: "健康监测，运动追踪，来电提醒，防水设计",
	},
	{
		ID:          "7",
		Name:        "无线耳机",
		Price:       299.0,
		Image:       "earphone.png",
		Description: "真无线蓝牙耳机，降噪功能，长续航时间",
	},
}

// Seed inserts the stock products that are not present yet.
func (uc *implUseCase) Seed(ctx context.Context) error {
	for _, p := range defaultProducts {
		existing, err := uc.repo.GetProduct(ctx, p.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Seed GetProduct %s: %v", p.ID, err)
			return err
		}
		if existing.ID != "" {
			continue
		}
		if err := uc.repo.CreateProduct(ctx, p); err != nil {
			uc.l.Errorf(ctx, "uc.Seed CreateProduct %s: %v", p.ID, err)
			return err
		}
	}
	uc.l.Infof(ctx, "default products seeded")
	return nil
}
