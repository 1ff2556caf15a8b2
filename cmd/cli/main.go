package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/bootstrap"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/config"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "phonewraps-admin",
		Usage: "PhoneWraps 管理后台命令行",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "配置文件路径", EnvVars: []string{"PWA_CONFIG"}},
			&cli.StringFlag{Name: "session-file", Usage: "会话文件路径", Value: defaultSessionFile(), EnvVars: []string{"PWA_SESSION_FILE"}},
		},
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			orphansCommand(),
			ordersCommand(),
			tooltipsCommand(),
			settingsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// ==================== 运行环境 ====================

// withDeps 加载配置并组装依赖，命令结束后释放
func withDeps(c *cli.Context, fn func(ctx context.Context, deps *bootstrap.Dependencies) error) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	if err := bootstrap.InitLogger(cfg); err != nil {
		return err
	}
	defer logger.Sync()

	deps, err := bootstrap.Build(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	return fn(c.Context, deps)
}

// withActor 在 withDeps 基础上恢复已登录会话
func withActor(c *cli.Context, fn func(ctx context.Context, deps *bootstrap.Dependencies, who service.Actor) error) error {
	return withDeps(c, func(ctx context.Context, deps *bootstrap.Dependencies) error {
		id, err := readSessionID(c.String("session-file"))
		if err != nil {
			return err
		}
		sess, err := deps.Services.Auth.Resolve(ctx, id)
		if err != nil {
			return fmt.Errorf("会话已失效，请重新 login: %w", err)
		}
		return fn(ctx, deps, service.ActorFromSession(sess, uuid.NewString()))
	})
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// ==================== 会话 ====================

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "登录店铺后端并保存会话",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"PWA_ADMIN_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			return withDeps(c, func(ctx context.Context, deps *bootstrap.Dependencies) error {
				sess, err := deps.Services.Auth.Login(ctx, c.String("email"), c.String("password"))
				if err != nil {
					return err
				}
				if err := writeSessionID(c.String("session-file"), sess.ID); err != nil {
					return err
				}
				fmt.Printf("已登录 %s，会话有效期至 %s\n", sess.Email, sess.ExpiresAt.Format("2006-01-02 15:04:05"))
				return nil
			})
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "删除本地会话",
		Action: func(c *cli.Context) error {
			err := withActor(c, func(ctx context.Context, deps *bootstrap.Dependencies, who service.Actor) error {
				return deps.Services.Auth.Logout(ctx, who)
			})
			if rmErr := removeSessionFile(c.String("session-file")); rmErr != nil && err == nil {
				err = rmErr
			}
			if err != nil {
				return err
			}
			fmt.Println("已登出")
			return nil
		},
	}
}

// ==================== 商品目录 ====================

func orphansCommand() *cli.Command {
	return &cli.Command{
		Name:  "orphans",
		Usage: "列出不属于任何合集的商品",
		Action: func(c *cli.Context) error {
			return withActor(c, func(ctx context.Context, deps *bootstrap.Dependencies, _ service.Actor) error {
				view, err := deps.Services.Catalog.Overview(ctx)
				if err != nil {
					return err
				}
				if len(view.OrphanedProducts) == 0 {
					fmt.Println("没有游离商品")
					return nil
				}
				w := newTable()
				fmt.Fprintln(w, "ID\tNAME\tTYPE\tLEVEL\tCOLLECTION")
				for _, p := range view.OrphanedProducts {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.Key(), p.Name, p.Type, p.Level, p.CollectionID.ID)
				}
				return w.Flush()
			})
		},
	}
}

// ==================== 订单 ====================

func ordersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "订单管理",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "订单列表",
				Action: func(c *cli.Context) error {
					return withActor(c, func(ctx context.Context, deps *bootstrap.Dependencies, who service.Actor) error {
						orders, err := deps.Services.Order.List(ctx, who)
						if err != nil {
							return err
						}
						w := newTable()
						fmt.Fprintln(w, "ID\tSTATUS\tITEMS\tMODELS\tTOTAL\tRETURN")
						for i := range orders {
							o := &orders[i]
							s := service.Summarize(o)
							ret := "-"
							if o.ReturnRequest != nil {
								ret = o.ReturnRequest.Status
							}
							fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n", o.ID, o.Status, s.ItemCount, len(s.Models), o.TotalAmount.StringFixed(2), ret)
						}
						return w.Flush()
					})
				},
			},
			{
				Name:      "status",
				Usage:     "修改订单状态",
				ArgsUsage: "<orderId> <status>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("需要参数 <orderId> <status>", 2)
					}
					return withActor(c, func(ctx context.Context, deps *bootstrap.Dependencies, who service.Actor) error {
						if err := deps.Services.Order.UpdateStatus(ctx, who, c.Args().Get(0), c.Args().Get(1)); err != nil {
							return err
						}
						fmt.Println("订单状态已更新")
						return nil
					})
				},
			},
			{
				Name:      "tracking",
				Usage:     "更新物流信息",
				ArgsUsage: "<orderId>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Usage: "运单号"},
					&cli.StringFlag{Name: "courier", Usage: "物流公司"},
					&cli.StringFlag{Name: "link", Usage: "查询链接"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("需要参数 <orderId>", 2)
					}
					return withActor(c, func(ctx context.Context, deps *bootstrap.Dependencies, who service.Actor) error {
						err := deps.Services.Order.UpdateTracking(ctx, who, model.TrackingInfo{
							OrderID:        c.Args().First(),
							TrackingNumber: c.String("number"),
							CourierPartner: c.String("courier"),
							TrackingLink:   c.String("link"),
						})
						if err != nil {
							return err
						}
						fmt.Println("物流信息已更新")
						return nil
					})
				},
			},
		},
	}
}

// ==================== 首页内容 ====================

func tooltipsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tooltips",
		Usage: "合集数量提示",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "按数量列出提示",
				Action: func(c *cli.Context) error {
					return withDeps(c, func(ctx context.Context, deps *bootstrap.Dependencies) error {
						list, err := deps.Services.HomeContent.Tooltips(ctx)
						if err != nil {
							return err
						}
						w := newTable()
						fmt.Fprintln(w, "QTY\tTITLE\tMESSAGE")
						for _, t := range list {
							fmt.Fprintf(w, "%d\t%s\t%s\n", t.Quantity, t.Title, t.Message)
						}
						return w.Flush()
					})
				},
			},
		},
	}
}

func settingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "站点设置",
		Subcommands: []*cli.Command{
			{
				Name:  "reset",
				Usage: "恢复默认站点设置",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "跳过确认"},
				},
				Action: func(c *cli.Context) error {
					if !c.Bool("yes") {
						return cli.Exit("恢复默认会覆盖当前设置，确认请加 --yes", 1)
					}
					return withActor(c, func(ctx context.Context, deps *bootstrap.Dependencies, who service.Actor) error {
						s, err := deps.Services.HomeContent.ResetSettings(ctx, who)
						if err != nil {
							return err
						}
						fmt.Printf("站点设置已恢复默认 (每行 %d 个，共 %d 行)\n", s.ProductsPerRow, s.ProductsRows)
						return nil
					})
				},
			},
		},
	}
}
