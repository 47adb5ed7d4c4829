package circuitcmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"circuit_tool/pkg/circuit"
	"circuit_tool/pkg/errorutil"
	"circuit_tool/pkg/graph"
	"circuit_tool/pkg/initutil"
	"circuit_tool/pkg/logutil"
	"circuit_tool/pkg/pointset"
	"circuit_tool/pkg/report"
)

const TOOL_VERSION = "1.0.0+20251019"

// CLIOptions 子命令共用的参数，没有在命令行指定的取配置文件里的值
type CLIOptions struct {
	Input  string
	Bound  int
	Format report.Format
	Kind   pointset.Kind
}

func addInputFlags(cmd *cobra.Command, opts *CLIOptions) {
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "-", "输入文件路径，- 表示标准输入")
	cmd.Flags().IntVarP(&opts.Bound, "bound", "k", circuit.DefaultBound, "Phase1 保留的最短边数(0 表示全部)")
	cmd.Flags().VarP(&opts.Kind, "kind", "f", "输入格式(lines/json)")
}

// 命令行没改过的参数使用配置文件的值
func (o *CLIOptions) resolve(cmd *cobra.Command) error {
	cfg := initutil.GetConfig()
	flags := cmd.Flags()
	if !flags.Changed("bound") {
		o.Bound = cfg.Bound
	}
	if !flags.Changed("kind") {
		o.Kind = cfg.InputKind
	}
	if flags.Lookup("type") != nil && !flags.Changed("type") {
		o.Format = cfg.Format
	}
	if o.Bound < 0 {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
			"参数错误", fmt.Errorf("bound 不能为负数: %d", o.Bound))
	}
	return nil
}

func loadPoints(cmd *cobra.Command, opts *CLIOptions) ([]pointset.Point, error) {
	var r io.Reader = cmd.InOrStdin()
	if opts.Input != "-" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "无法打开输入文件", err)
		}
		defer f.Close()
		r = f
	}

	points, err := pointset.Read(r, opts.Kind)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "输入数据有误", err)
	}
	logutil.Debug("读取到 %d 个点", len(points))
	return points, nil
}

func solverError(err error) error {
	switch {
	case errors.Is(err, circuit.ErrTooFewPoints),
		errors.Is(err, circuit.ErrInsufficientComponents),
		errors.Is(err, circuit.ErrPrematureExhaustion):
		return errorutil.NewExitErrorWithMessage(errorutil.CodeAssertionFailed, "求解前置条件不满足", err)
	default:
		return errorutil.NewExitError(errorutil.CodeInternalErr, err)
	}
}

// SolveCmd 求解两个阶段并输出
func SolveCmd() *cobra.Command {
	opts := &CLIOptions{Format: report.FormatPlain, Kind: pointset.KindLines}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "按距离从近到远连接点，输出 Phase1 和 Phase2 的答案",
		Long: `按距离从近到远连接点，输出 Phase1 和 Phase2 的答案

Phase1: 只连接最近的 K 条边后，最大的三个分量大小之积
Phase2: 继续按距离连接直到全部连通，最后一条边两端 X 坐标之积

Examples:
  circuits solve -i input.txt
  circuits solve -i input.txt -k 10 -t txt
  cat points.json | circuits solve -f json -t json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			points, err := loadPoints(cmd, opts)
			if err != nil {
				return err
			}

			res, err := circuit.Solve(points, opts.Bound)
			if err != nil {
				return solverError(err)
			}

			if err := report.Render(cmd.OutOrStdout(), res, points, opts.Format); err != nil {
				return errorutil.NewExitError(errorutil.CodeIOError, err)
			}
			return nil
		},
	}

	addInputFlags(cmd, opts)
	cmd.Flags().VarP(&opts.Format, "type", "t", "输出格式(plain/txt/json)")
	return cmd
}

// DotCmd 把 Phase1 保留的边导出成 Graphviz DOT
func DotCmd() *cobra.Command {
	opts := &CLIOptions{Kind: pointset.KindLines}
	var name string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "把最近的 K 条边导出成 Graphviz DOT",
		Long: `把最近的 K 条边导出成 Graphviz DOT，孤立的点也会作为节点输出

Examples:
  circuits dot -i input.txt -k 10 | dot -Tsvg > circuits.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			points, err := loadPoints(cmd, opts)
			if err != nil {
				return err
			}

			s := circuit.NewSolver(points, circuit.WithBound(opts.Bound))
			g, err := graph.ForestGraph(name, points, s.Retained())
			if err != nil {
				return errorutil.NewExitError(errorutil.CodeInternalErr, err)
			}
			logutil.Info("导出 %d 个节点，%d 个连通分量",
				len(points), len(graph.ConnectedComponents(graph.ToAdjacencyMap(g))))

			if _, err := io.WriteString(cmd.OutOrStdout(), g.String()); err != nil {
				return errorutil.NewExitError(errorutil.CodeIOError, err)
			}
			return nil
		},
	}

	addInputFlags(cmd, opts)
	cmd.Flags().StringVarP(&name, "name", "n", "circuits", "DOT 图的名字")
	return cmd
}

// RootCmd 根命令，日志和配置在子命令执行前初始化
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "circuits",
		Short:   fmt.Sprintf("circuits v%s 按最近距离连接三维点并统计连通分量", TOOL_VERSION),
		Version: TOOL_VERSION,
	}

	rootCmd.AddCommand(SolveCmd(), DotCmd())

	var logFile, configPath string
	logLevel := logutil.WARN

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "circuits.log", "日志文件名(stdout 表示标准输出)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径(默认当前目录下的 "+initutil.DefaultConfigFile+")")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunEs返回的错误内容
	rootCmd.SilenceErrors = true

	// PersistentPreRunE 回调，这个钩子会在用户的命令解析完成、flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initutil.InitSystem(logFile, logLevel, configPath); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "加载配置失败", err)
		}
		return nil
	}

	return rootCmd
}
