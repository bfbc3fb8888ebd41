package content

// Placeholders: {stage} stage id, {title} localized stage title,
// {objective} stage objective, {fence} a markdown code fence.

const overviewTemplate = `# 階段 {stage} - {title}

## 流程目的
此階段的主要目標是{objective}。

## 處理邏輯
1. 讀取輸入檔案並進行初步驗證
2. 根據業務規則執行資料處理
3. 生成標準化的輸出結果
4. 執行品質檢核和驗證

## 存在意義
此階段在整個勞務費處理流程中扮演關鍵角色，確保資料的準確性和完整性，為後續階段提供可靠的基礎資料。

## 預期成果
- 處理完成的標準化資料檔案
- 詳細的處理報告和統計資訊
- 品質檢核結果和異常報告`

const technicalTemplate = `# 階段 {stage} 詳細技術文檔

## 完整處理邏輯

### 資料輸入要求
- 檔案格式：Excel (.xlsx)
- 資料結構：標準化欄位定義
- 品質要求：完整性和準確性驗證

### 處理演算法
{fence}
1. 資料載入和預處理
   - 檔案完整性檢查
   - 資料格式標準化
   - 缺失值處理

2. 業務邏輯執行
   - 分類規則應用
   - 計算邏輯執行
   - 驗證規則檢查

3. 結果輸出
   - 標準化格式輸出
   - 報告生成
   - 品質指標計算
{fence}

### 技術細節
- 程式語言：Python 3.8+
- 主要套件：pandas, openpyxl, numpy
- 記憶體需求：建議 4GB+
- 處理時間：約 2-5 分鐘

### 品質控制
- 自動驗證機制
- 異常檢測和處理
- 完整性檢查
- 準確性驗證`

const sourceTemplate = `#!/usr/bin/env python3
# -*- coding: utf-8 -*-
"""
階段 {stage}
專業勞務費處理系統
"""

import pandas as pd
import numpy as np
from pathlib import Path
import logging
from typing import Dict, List, Tuple

class Stage{stage}Processor:
    """階段 {stage} 處理器類別"""

    def __init__(self):
        self.logger = logging.getLogger(__name__)
        self.setup_logging()

    def setup_logging(self):
        """設定日誌記錄"""
        logging.basicConfig(
            level=logging.INFO,
            format='%(asctime)s - %(name)s - %(levelname)s - %(message)s'
        )

    def load_input_files(self, file_paths: List[str]) -> Dict[str, pd.DataFrame]:
        """載入輸入檔案"""
        data = {}
        for file_path in file_paths:
            try:
                df = pd.read_excel(file_path)
                filename = Path(file_path).stem
                data[filename] = df
                self.logger.info(f"成功載入檔案: {filename}")
            except Exception as e:
                self.logger.error(f"載入檔案失敗 {file_path}: {e}")
                raise
        return data

    def process_data(self, input_data: Dict[str, pd.DataFrame]) -> Dict[str, pd.DataFrame]:
        """執行主要資料處理邏輯"""
        processed_data = {}

        # 主要處理邏輯
        for key, df in input_data.items():
            # 資料清理和預處理
            df_cleaned = self.clean_data(df)

            # 業務邏輯處理
            df_processed = self.apply_business_logic(df_cleaned)

            # 品質檢核
            df_validated = self.validate_data(df_processed)

            processed_data[f"{key}_processed"] = df_validated

        return processed_data

    def clean_data(self, df: pd.DataFrame) -> pd.DataFrame:
        """資料清理"""
        # 移除空行
        df = df.dropna(how='all')

        # 標準化欄位名稱
        df.columns = df.columns.str.strip()

        return df

    def apply_business_logic(self, df: pd.DataFrame) -> pd.DataFrame:
        """應用業務邏輯"""
        # 根據階段特定的業務規則處理資料
        return df

    def validate_data(self, df: pd.DataFrame) -> pd.DataFrame:
        """資料驗證"""
        # 執行品質檢核
        return df

    def save_output(self, data: Dict[str, pd.DataFrame], output_dir: str):
        """儲存處理結果"""
        output_path = Path(output_dir)
        output_path.mkdir(exist_ok=True)

        for filename, df in data.items():
            file_path = output_path / f"{filename}.xlsx"
            df.to_excel(file_path, index=False)
            self.logger.info(f"儲存檔案: {file_path}")

def main():
    """主執行函數"""
    processor = Stage{stage}Processor()

    input_files = ["input_file_1.xlsx", "input_file_2.xlsx"]
    output_dir = "output"

    try:
        input_data = processor.load_input_files(input_files)
        processed_data = processor.process_data(input_data)
        processor.save_output(processed_data, output_dir)

        print("階段 {stage} 處理完成！")

    except Exception as e:
        logging.error(f"處理過程發生錯誤: {e}")
        raise

if __name__ == "__main__":
    main()`
