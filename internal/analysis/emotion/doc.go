// Package emotion 定义情绪标签、分类器接口，以及未配置模型时使用的离线关键词分类器。
package emotion
