package comment

import (
	"math"
	"testing"
)

// TestUsefulness 测试有用度公式
// (2×very_useful + useful − useless) / 3.0,除数固定为3
func TestUsefulness(t *testing.T) {
	tests := []struct {
		name       string
		veryUseful int
		useful     int
		useless    int
		want       float64
	}{
		{"无人打分", 0, 0, 0, 0},
		{"混合打分", 2, 1, 1, 4.0 / 3.0},
		{"全是很有用", 3, 0, 0, 2.0},
		{"全是没用", 0, 0, 3, -1.0},
		{"负分", 0, 1, 2, -1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Usefulness(tt.veryUseful, tt.useful, tt.useless)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Usefulness(%d,%d,%d) = %f, 期望 %f",
					tt.veryUseful, tt.useful, tt.useless, got, tt.want)
			}
		})
	}
}

// TestComment_Rate 测试打分累加和有用度重算
func TestComment_Rate(t *testing.T) {
	c := &Comment{Username: "zhangsan", ISBN: "9787111213826", Score: 8, Text: "好书"}

	if err := c.Rate(TierVeryUseful); err != nil {
		t.Fatalf("打分失败: %v", err)
	}
	if err := c.Rate(TierVeryUseful); err != nil {
		t.Fatalf("打分失败: %v", err)
	}
	if err := c.Rate(TierUseful); err != nil {
		t.Fatalf("打分失败: %v", err)
	}
	if err := c.Rate(TierUseless); err != nil {
		t.Fatalf("打分失败: %v", err)
	}

	if c.VeryUsefulCount != 2 || c.UsefulCount != 1 || c.UselessCount != 1 {
		t.Errorf("计数器错误: very_useful=%d useful=%d useless=%d",
			c.VeryUsefulCount, c.UsefulCount, c.UselessCount)
	}

	want := 4.0 / 3.0
	if math.Abs(c.UsefulnessScore-want) > 1e-9 {
		t.Errorf("有用度错误: got=%f, want=%f", c.UsefulnessScore, want)
	}

	// 未知档位被拒绝
	if err := c.Rate(RatingTier("great")); err != ErrInvalidTier {
		t.Errorf("未知档位应返回ErrInvalidTier, got=%v", err)
	}
}

// TestNewComment 测试评论创建校验
func TestNewComment(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		c, err := NewComment("zhangsan", "9787111213826", 8, "值得一读")
		if err != nil {
			t.Fatalf("创建失败: %v", err)
		}
		if c.Score != 8 || c.Time.IsZero() {
			t.Errorf("字段未正确初始化: %+v", c)
		}
	})

	t.Run("评分超出范围", func(t *testing.T) {
		if _, err := NewComment("zhangsan", "9787111213826", 11, "x"); err != ErrInvalidScore {
			t.Errorf("期望ErrInvalidScore, got=%v", err)
		}
		if _, err := NewComment("zhangsan", "9787111213826", 0, "x"); err != ErrInvalidScore {
			t.Errorf("期望ErrInvalidScore, got=%v", err)
		}
	})

	t.Run("正文为空", func(t *testing.T) {
		if _, err := NewComment("zhangsan", "9787111213826", 5, ""); err != ErrInvalidText {
			t.Errorf("期望ErrInvalidText, got=%v", err)
		}
	})

	t.Run("正文超长", func(t *testing.T) {
		long := make([]byte, MaxTextLength+1)
		for i := range long {
			long[i] = 'a'
		}
		if _, err := NewComment("zhangsan", "9787111213826", 5, string(long)); err != ErrInvalidText {
			t.Errorf("期望ErrInvalidText, got=%v", err)
		}
	})
}

// TestParseRatingTier 测试打分档位解析
func TestParseRatingTier(t *testing.T) {
	for _, valid := range []string{"useless", "useful", "very_useful"} {
		if _, err := ParseRatingTier(valid); err != nil {
			t.Errorf("合法档位%q解析失败: %v", valid, err)
		}
	}
	if _, err := ParseRatingTier("great"); err != ErrInvalidTier {
		t.Errorf("非法档位应返回ErrInvalidTier, got=%v", err)
	}
}
